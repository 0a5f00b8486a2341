//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"

	"khaogully-admin/internal/entities"
)

type OrderGateway interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type DriverGateway interface {
	ListDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
}
