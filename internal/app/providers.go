package app

import (
	"context"
	"fmt"
	"time"

	"khaogully-admin/internal/gateway/rest/auth"
	"khaogully-admin/internal/gateway/rest/backend"
	"khaogully-admin/internal/gateway/rest/transport"
	"khaogully-admin/internal/handlers/tasks/livemap_sweep"
	"khaogully-admin/internal/handlers/tasks/view_refresh"
	"khaogully-admin/internal/pages"
	"khaogully-admin/internal/pkg/config"
	"khaogully-admin/internal/repository/token"
	commissionService "khaogully-admin/internal/service/commission"
	dashboardService "khaogully-admin/internal/service/dashboard"
	driversService "khaogully-admin/internal/service/drivers"
	earningsService "khaogully-admin/internal/service/earnings"
	"khaogully-admin/internal/service/livemap"
	ordersService "khaogully-admin/internal/service/orders"
	poolsService "khaogully-admin/internal/service/pools"
	restaurantPaymentsService "khaogully-admin/internal/service/restaurantpayments"
	"khaogully-admin/internal/service/session"
	"khaogully-admin/pkg/background"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/realtime"
	"khaogully-admin/pkg/redis"
	"khaogully-admin/pkg/retrier"
	"khaogully-admin/pkg/submitguard"
)

func provideTransportConfig(cfg *config.Config) transport.Config {
	return transport.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Retry: retrier.Config{
			InitialInterval: cfg.Backend.RetryInitialInterval,
			MaxInterval:     cfg.Backend.RetryMaxInterval,
			MaxRetries:      cfg.Backend.RetryMax,
			Randomization:   0.5,
			Multiplier:      2,
		},
	}
}

// provideAuthGateway вход администратора идёт без токена.
func provideAuthGateway(cfg transport.Config) (*auth.Gateway, error) {
	tr, err := transport.New("auth", cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("auth transport: %w", err)
	}
	return auth.New(tr), nil
}

func provideBackendGateway(cfg transport.Config, sess *session.Service) (*backend.Gateway, error) {
	tr, err := transport.New("backend", cfg, sess)
	if err != nil {
		return nil, fmt.Errorf("backend transport: %w", err)
	}
	return backend.New(tr), nil
}

// provideRedis подключается только если redis выбран хранилищем сессии
// или блокировкой выплат.
func provideRedis(ctx context.Context, log logger.Logger, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.RedisRequired() {
		return nil, func() {}, nil
	}

	client, err := redis.New(ctx, redis.Config{
		URL:      cfg.Redis.URL,
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Info("redis connected")

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error("close redis", logger.NewField("error", err))
		}
	}
	return client, cleanup, nil
}

func provideTokenStore(cfg *config.Config, client *redis.Client) session.TokenStore {
	if cfg.Session.Store == config.StoreRedis {
		return token.NewRedisStore(client, cfg.Session.TokenTTL)
	}
	return token.NewFileStore(cfg.Session.TokenFile)
}

func providePayoutGuard(cfg *config.Config, client *redis.Client) submitguard.Guard {
	if cfg.Payout.Guard == config.GuardRedis {
		return submitguard.NewRedis(client)
	}
	return submitguard.NewMemory()
}

func provideServiceSession(log logger.Logger, gw *auth.Gateway, store session.TokenStore) *session.Service {
	return session.New(log, gw, store)
}

func provideServiceEarnings(
	log logger.Logger,
	gw *backend.Gateway,
	guard submitguard.Guard,
	cfg *config.Config,
) *earningsService.Service {
	return earningsService.New(log, gw, gw, guard, earningsService.Config{
		PayoutLockTTL: cfg.Payout.GuardTTL,
	})
}

func provideServiceRestaurantPayments(
	log logger.Logger,
	gw *backend.Gateway,
	guard submitguard.Guard,
	cfg *config.Config,
) *restaurantPaymentsService.Service {
	return restaurantPaymentsService.New(log, gw, gw, gw, guard, restaurantPaymentsService.Config{
		PayoutLockTTL: cfg.Payout.GuardTTL,
	})
}

func provideLivemap(log logger.Logger, cfg *config.Config) *livemap.Tracker {
	return livemap.New(log, livemap.Config{StaleAfter: cfg.Livemap.StaleAfter})
}

// channelFactory каждое монтирование страницы получает новый канал:
// закрытый канал повторно не запускается.
func channelFactory(
	log logger.Logger,
	tokens realtime.TokenSource,
	cfg config.Realtime,
	name string,
	handlers map[realtime.EventType]realtime.Handler,
) func() pages.Channel {
	return func() pages.Channel {
		return realtime.New(log, tokens, realtime.Config{
			Name:     name,
			URL:      realtime.AdminURL(cfg.Origin, cfg.DevHost),
			Handlers: handlers,
			Reconnect: retrier.Config{
				InitialInterval: cfg.ReconnectInitialInterval,
				MaxInterval:     cfg.ReconnectMaxInterval,
				MaxRetries:      cfg.ReconnectMaxRetries,
			},
			PongWait: cfg.PongWait,
		})
	}
}

func refresh(name string, view view_refresh.View, interval time.Duration) *view_refresh.ViewRefresh {
	return view_refresh.NewViewRefresh(name, view, interval)
}

func providePages(
	log logger.Logger,
	cfg *config.Config,
	sess *session.Service,
	dash *dashboardService.Service,
	orders *ordersService.Service,
	drivers *driversService.Service,
	tracker *livemap.Tracker,
	pools *poolsService.Service,
	earnings *earningsService.Service,
	payments *restaurantPaymentsService.Service,
	commission *commissionService.Service,
) []pages.Page {
	poll := cfg.Poll

	return []pages.Page{
		{
			Name:  "dashboard",
			Tasks: []background.Task{refresh("dashboard", dash, poll.Dashboard)},
			Channel: channelFactory(log, sess, cfg.Realtime, "dashboard", map[realtime.EventType]realtime.Handler{
				realtime.EventOrderUpdate: dash.OnOrderUpdate,
			}),
			Open:  dash.Open,
			Close: dash.Close,
		},
		{
			Name: "orders",
			Tasks: []background.Task{
				refresh("orders", orders, poll.Orders),
				refresh("assignable drivers", view_refresh.ReloadFunc(orders.ReloadDrivers), poll.Orders),
			},
			Channel: channelFactory(log, sess, cfg.Realtime, "orders", map[realtime.EventType]realtime.Handler{
				realtime.EventOrderUpdate: orders.OnOrderUpdate,
			}),
			Open:  orders.Open,
			Close: orders.Close,
		},
		{
			Name:  "drivers",
			Tasks: []background.Task{refresh("drivers", drivers, poll.Drivers)},
			Open:  drivers.Open,
			Close: drivers.Close,
		},
		{
			Name:  "live map",
			Tasks: []background.Task{livemap_sweep.NewLivemapSweep(log, tracker, cfg.Livemap.SweepInterval)},
			Channel: channelFactory(log, sess, cfg.Realtime, "live map", map[realtime.EventType]realtime.Handler{
				realtime.EventDriverLocation: tracker.OnLocation,
				realtime.EventLocationUpdate: tracker.OnLocation,
			}),
			Close: tracker.Reset,
		},
		{
			Name: "pools",
			Tasks: []background.Task{
				refresh("pools", pools, poll.Pools),
				refresh("pool orders", view_refresh.ReloadFunc(pools.ReloadSelected), poll.Pools),
			},
			Channel: channelFactory(log, sess, cfg.Realtime, "pools", map[realtime.EventType]realtime.Handler{
				realtime.EventOrderUpdate:       pools.OnOrderUpdate,
				realtime.EventOrderStatusUpdate: pools.OnOrderUpdate,
			}),
			Open:  pools.Open,
			Close: pools.Close,
		},
		{
			Name:  "earnings",
			Tasks: []background.Task{refresh("earnings", earnings, poll.Earnings)},
			Open:  earnings.Open,
			Close: earnings.Close,
		},
		{
			Name:  "restaurant payments",
			Tasks: []background.Task{refresh("restaurant payments", payments, poll.RestaurantPayments)},
			Open:  payments.Open,
			Close: payments.Close,
		},
		{
			Name:  "commission",
			Tasks: []background.Task{refresh("commission", commission, poll.Commission)},
			Open:  commission.Open,
			Close: commission.Close,
		},
	}
}
