//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"khaogully-admin/internal/gateway/rest/backend"
	"khaogully-admin/internal/pages"
	"khaogully-admin/internal/pkg/config"
	commissionService "khaogully-admin/internal/service/commission"
	dashboardService "khaogully-admin/internal/service/dashboard"
	driversService "khaogully-admin/internal/service/drivers"
	earningsService "khaogully-admin/internal/service/earnings"
	"khaogully-admin/internal/service/livemap"
	ordersService "khaogully-admin/internal/service/orders"
	poolsService "khaogully-admin/internal/service/pools"
	restaurantPaymentsService "khaogully-admin/internal/service/restaurantpayments"
	"khaogully-admin/internal/service/session"
	"khaogully-admin/pkg/logger"
)

// InitializeApplication для HTTP консоли (cmd/admin-console)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideTransportConfig,
		provideAuthGateway,
		provideBackendGateway,

		provideRedis,
		provideTokenStore,
		providePayoutGuard,

		provideServiceSession,
		dashboardService.New,
		ordersService.New,
		driversService.New,
		provideLivemap,
		poolsService.New,
		provideServiceEarnings,
		provideServiceRestaurantPayments,
		commissionService.New,

		providePages,
		pages.NewManager,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSession), new(*session.Service)),
		wire.Bind(new(ServicePages), new(*pages.Manager)),
		wire.Bind(new(ServiceDashboard), new(*dashboardService.Service)),
		wire.Bind(new(ServiceOrders), new(*ordersService.Service)),
		wire.Bind(new(ServiceDrivers), new(*driversService.Service)),
		wire.Bind(new(ServiceLivemap), new(*livemap.Tracker)),
		wire.Bind(new(ServicePools), new(*poolsService.Service)),
		wire.Bind(new(ServiceEarnings), new(*earningsService.Service)),
		wire.Bind(new(ServiceRestaurantPayments), new(*restaurantPaymentsService.Service)),
		wire.Bind(new(ServiceCommission), new(*commissionService.Service)),

		wire.Bind(new(dashboardService.OrderGateway), new(*backend.Gateway)),
		wire.Bind(new(dashboardService.DriverGateway), new(*backend.Gateway)),
		wire.Bind(new(ordersService.OrderGateway), new(*backend.Gateway)),
		wire.Bind(new(ordersService.DriverGateway), new(*backend.Gateway)),
		wire.Bind(new(driversService.DriverGateway), new(*backend.Gateway)),
		wire.Bind(new(poolsService.PoolGateway), new(*backend.Gateway)),
		wire.Bind(new(poolsService.DriverGateway), new(*backend.Gateway)),
		wire.Bind(new(commissionService.CommissionGateway), new(*backend.Gateway)),
	)
	return nil, nil, nil
}
