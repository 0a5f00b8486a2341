package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "khaogully-admin/internal/app"
	"khaogully-admin/internal/handlers/rest/commission_config_get"
	"khaogully-admin/internal/handlers/rest/commission_config_patch"
	"khaogully-admin/internal/handlers/rest/commission_history_get"
	"khaogully-admin/internal/handlers/rest/commission_rate_delete"
	"khaogully-admin/internal/handlers/rest/commission_rate_patch"
	"khaogully-admin/internal/handlers/rest/commission_rate_post"
	"khaogully-admin/internal/handlers/rest/commission_rate_toggle_post"
	"khaogully-admin/internal/handlers/rest/commission_rates_get"
	"khaogully-admin/internal/handlers/rest/commission_restaurant_assign_post"
	"khaogully-admin/internal/handlers/rest/commission_restaurant_patch"
	"khaogully-admin/internal/handlers/rest/dashboard_get"
	"khaogully-admin/internal/handlers/rest/driver_bank_patch"
	"khaogully-admin/internal/handlers/rest/driver_status_patch"
	"khaogully-admin/internal/handlers/rest/drivers_get"
	"khaogully-admin/internal/handlers/rest/earnings_driver_bank_patch"
	"khaogully-admin/internal/handlers/rest/earnings_driver_get"
	"khaogully-admin/internal/handlers/rest/earnings_get"
	"khaogully-admin/internal/handlers/rest/earnings_payout_post"
	"khaogully-admin/internal/handlers/rest/earnings_selection_post"
	"khaogully-admin/internal/handlers/rest/healthcheck_head"
	"khaogully-admin/internal/handlers/rest/livemap_get"
	"khaogully-admin/internal/handlers/rest/order_assign_post"
	"khaogully-admin/internal/handlers/rest/order_deliver_post"
	"khaogully-admin/internal/handlers/rest/order_unassign_post"
	"khaogully-admin/internal/handlers/rest/orders_get"
	"khaogully-admin/internal/handlers/rest/orders_post"
	"khaogully-admin/internal/handlers/rest/pool_assign_driver_post"
	"khaogully-admin/internal/handlers/rest/pool_drivers_get"
	"khaogully-admin/internal/handlers/rest/pool_get"
	"khaogully-admin/internal/handlers/rest/pool_group_assign_post"
	"khaogully-admin/internal/handlers/rest/pool_group_post"
	"khaogully-admin/internal/handlers/rest/pool_order_toggle_post"
	"khaogully-admin/internal/handlers/rest/pool_orders_get"
	"khaogully-admin/internal/handlers/rest/pool_orders_toggle_unassigned_post"
	"khaogully-admin/internal/handlers/rest/pools_get"
	"khaogully-admin/internal/handlers/rest/pools_sync_post"
	"khaogully-admin/internal/handlers/rest/pools_trigger_sync_post"
	"khaogully-admin/internal/handlers/rest/restaurant_commission_post"
	"khaogully-admin/internal/handlers/rest/restaurant_payment_get"
	"khaogully-admin/internal/handlers/rest/restaurant_payment_patch"
	"khaogully-admin/internal/handlers/rest/restaurant_payments_get"
	"khaogully-admin/internal/handlers/rest/restaurant_payments_payout_post"
	"khaogully-admin/internal/handlers/rest/restaurant_payments_selection_post"
	"khaogully-admin/internal/handlers/rest/restaurant_portal_sync_post"
	"khaogully-admin/internal/handlers/rest/session_login_post"
	"khaogully-admin/internal/handlers/rest/session_logout_post"
	"khaogully-admin/internal/handlers/rest/status_get"
	"khaogully-admin/internal/pkg/config"
	"khaogully-admin/internal/pkg/dotenv"
	metrics_system "khaogully-admin/internal/pkg/metrics"
	"khaogully-admin/internal/pkg/middlewares/graceful_shutdown"
	"khaogully-admin/internal/pkg/middlewares/metrics"
	"khaogully-admin/internal/pkg/middlewares/rate_limiter"
	"khaogully-admin/internal/pkg/middlewares/request_id"
	"khaogully-admin/internal/pkg/middlewares/session_guard"
	"khaogully-admin/internal/pkg/middlewares/timeout"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/logger/zap_adapter"
	"khaogully-admin/pkg/token_bucket"
)

func main() {
	// уровень логов ещё неизвестен, .env читается до логгера
	if err := dotenv.Load("admin-console", os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to load env file: %v", err)
	}

	cfg, cfgErr := config.Load()

	level := "info"
	if cfg != nil {
		level = cfg.Log.Level
	}
	zapLogger, err := zap_adapter.NewZapAdapter(level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting khaogully admin console")

	if cfgErr != nil {
		mainLog.Error("load config", logger.NewField("error", cfgErr))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и sessionCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	app, cleanup, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx)

	// sessionCtx живёт дольше запроса POST /session/login: страницы,
	// смонтированные при входе, работают до выхода или остановки.
	sessionCtx, stopSession := context.WithCancel(context.Background())
	defer stopSession()

	unsubscribe := app.Session.OnChange(app.Pages.HandleSessionChange(sessionCtx))
	defer func() {
		unsubscribe()
		if err := app.Pages.Unmount(); err != nil {
			runLog.Error("failed to unmount pages", logger.NewField("error", err))
		}
	}()

	if err := app.Session.Restore(ctx); err != nil {
		runLog.Warn("session not restored", logger.NewField("error", err))
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, app, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware)
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Session)).Methods(http.MethodHead)
	router.Handle("/status", status_get.New(log, app.Session, app.Pages)).Methods(http.MethodGet)

	router.Handle("/session/login", session_login_post.New(log, app.Session)).Methods(http.MethodPost)
	router.Handle("/session/logout", session_logout_post.New(log, app.Session)).Methods(http.MethodPost)

	// страницы консоли доступны только после входа
	pages := router.NewRoute().Subrouter()
	pages.Use(session_guard.Middleware(app.Session))

	pages.Handle("/dashboard", dashboard_get.New(log, app.Dashboard)).Methods(http.MethodGet)

	pages.Handle("/orders", orders_get.New(log, app.Orders)).Methods(http.MethodGet)
	pages.Handle("/orders", orders_post.New(log, app.Orders)).Methods(http.MethodPost)
	pages.Handle("/orders/{id:[0-9]+}/assign", order_assign_post.New(log, app.Orders)).Methods(http.MethodPost)
	pages.Handle("/orders/{id:[0-9]+}/unassign", order_unassign_post.New(log, app.Orders)).Methods(http.MethodPost)
	pages.Handle("/orders/{id:[0-9]+}/deliver", order_deliver_post.New(log, app.Orders)).Methods(http.MethodPost)

	pages.Handle("/drivers", drivers_get.New(log, app.Drivers)).Methods(http.MethodGet)
	pages.Handle("/drivers/{id:[0-9]+}/status", driver_status_patch.New(log, app.Drivers)).Methods(http.MethodPatch)
	pages.Handle("/drivers/{id:[0-9]+}/bank", driver_bank_patch.New(log, app.Drivers)).Methods(http.MethodPatch)

	pages.Handle("/live-map", livemap_get.New(log, app.Livemap)).Methods(http.MethodGet)

	pages.Handle("/pools", pools_get.New(log, app.Pools)).Methods(http.MethodGet)
	pages.Handle("/pools/sync", pools_sync_post.New(log, app.Pools)).Methods(http.MethodPost)
	pages.Handle("/pools/trigger-sync", pools_trigger_sync_post.New(log, app.Pools)).Methods(http.MethodPost)
	pages.Handle("/pools/drivers", pool_drivers_get.New(log, app.Pools)).Methods(http.MethodGet)
	pages.Handle("/pools/{id:[0-9]+}", pool_get.New(log, app.Pools)).Methods(http.MethodGet)
	pages.Handle("/pools/{id:[0-9]+}/group", pool_group_post.New(log, app.Pools)).Methods(http.MethodPost)
	pages.Handle("/pools/{id:[0-9]+}/groups/{gid:[0-9]+}/assign", pool_group_assign_post.New(log, app.Pools)).Methods(http.MethodPost)
	pages.Handle("/pools/{id:[0-9]+}/orders", pool_orders_get.New(log, app.Pools)).Methods(http.MethodGet)
	pages.Handle("/pools/{id:[0-9]+}/orders/toggle-unassigned", pool_orders_toggle_unassigned_post.New(log, app.Pools)).Methods(http.MethodPost)
	pages.Handle("/pools/{id:[0-9]+}/orders/{oid:[0-9]+}/toggle", pool_order_toggle_post.New(log, app.Pools)).Methods(http.MethodPost)
	pages.Handle("/pools/{id:[0-9]+}/assign-driver", pool_assign_driver_post.New(log, app.Pools)).Methods(http.MethodPost)

	pages.Handle("/earnings", earnings_get.New(log, app.Earnings)).Methods(http.MethodGet)
	pages.Handle("/earnings/selection", earnings_selection_post.New(log, app.Earnings)).Methods(http.MethodPost)
	pages.Handle("/earnings/payout", earnings_payout_post.New(log, app.Earnings)).Methods(http.MethodPost)
	pages.Handle("/earnings/drivers/{id:[0-9]+}", earnings_driver_get.New(log, app.Earnings)).Methods(http.MethodGet)
	pages.Handle("/earnings/drivers/{id:[0-9]+}/bank", earnings_driver_bank_patch.New(log, app.Earnings)).Methods(http.MethodPatch)

	pages.Handle("/restaurant-payments", restaurant_payments_get.New(log, app.RestaurantPayments)).Methods(http.MethodGet)
	pages.Handle("/restaurant-payments/selection", restaurant_payments_selection_post.New(log, app.RestaurantPayments)).Methods(http.MethodPost)
	pages.Handle("/restaurant-payments/payout", restaurant_payments_payout_post.New(log, app.RestaurantPayments)).Methods(http.MethodPost)
	pages.Handle("/restaurant-payments/{id:[0-9]+}", restaurant_payment_get.New(log, app.RestaurantPayments)).Methods(http.MethodGet)
	pages.Handle("/restaurant-payments/{id:[0-9]+}", restaurant_payment_patch.New(log, app.RestaurantPayments)).Methods(http.MethodPatch)
	pages.Handle("/restaurant-payments/{id:[0-9]+}/portal-sync", restaurant_portal_sync_post.New(log, app.RestaurantPayments)).Methods(http.MethodPost)
	pages.Handle("/restaurant-payments/{id:[0-9]+}/commission", restaurant_commission_post.New(log, app.RestaurantPayments)).Methods(http.MethodPost)

	pages.Handle("/commission/rates", commission_rates_get.New(log, app.Commission)).Methods(http.MethodGet)
	pages.Handle("/commission/rates", commission_rate_post.New(log, app.Commission)).Methods(http.MethodPost)
	pages.Handle("/commission/rates/{id:[0-9]+}", commission_rate_patch.New(log, app.Commission)).Methods(http.MethodPatch)
	pages.Handle("/commission/rates/{id:[0-9]+}", commission_rate_delete.New(log, app.Commission)).Methods(http.MethodDelete)
	pages.Handle("/commission/rates/{id:[0-9]+}/toggle", commission_rate_toggle_post.New(log, app.Commission)).Methods(http.MethodPost)
	pages.Handle("/commission/restaurants/{id:[0-9]+}/assign", commission_restaurant_assign_post.New(log, app.Commission)).Methods(http.MethodPost)
	pages.Handle("/commission/restaurants/{id:[0-9]+}", commission_restaurant_patch.New(log, app.Commission)).Methods(http.MethodPatch)
	pages.Handle("/commission/restaurants/{id:[0-9]+}/history", commission_history_get.New(log, app.Commission)).Methods(http.MethodGet)
	pages.Handle("/commission/config", commission_config_get.New(log, app.Commission)).Methods(http.MethodGet)
	pages.Handle("/commission/config", commission_config_patch.New(log, app.Commission)).Methods(http.MethodPatch)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
