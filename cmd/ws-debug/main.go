package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"khaogully-admin/internal/pkg/config"
	"khaogully-admin/internal/pkg/dotenv"
	"khaogully-admin/internal/repository/token"
	"khaogully-admin/internal/service/session"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/logger/zap_adapter"
	"khaogully-admin/pkg/realtime"
	"khaogully-admin/pkg/redis"
	"khaogully-admin/pkg/retrier"
)

type options struct {
	token        string
	pingInterval time.Duration
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

func main() {
	if err := dotenv.Load("ws-debug", os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to load env file: %v", err)
	}

	var opts options
	flags := pflag.NewFlagSet("ws-debug", pflag.ExitOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.StringVar(&opts.token, "token", "", "admin token (default: the stored session token)")
	flags.DurationVar(&opts.pingInterval, "ping-interval", 0, `send {"type":"ping"} every interval, 0 disables`)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger
	if err := run(context.Background(), cfg, opts, log); err != nil {
		log.Error("ws-debug failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	tok := opts.token
	if tok == "" {
		var err error
		tok, err = storedToken(ctx, cfg)
		if err != nil && !errors.Is(err, session.ErrTokenNotFound) {
			return err
		}
	}
	if tok == "" {
		return errors.New("no admin token found: log in through the console or pass --token")
	}

	urlFor := realtime.AdminURL(cfg.Realtime.Origin, cfg.Realtime.DevHost)
	target, err := urlFor(tok)
	if err != nil {
		return fmt.Errorf("build websocket url: %w", err)
	}
	log.Info("connecting", logger.NewField("url", realtime.RedactToken(target)))

	ch := realtime.New(log, staticToken(tok), realtime.Config{
		Name:     "ws-debug",
		URL:      urlFor,
		Fallback: printEvent,
		Reconnect: retrier.Config{
			InitialInterval: cfg.Realtime.ReconnectInitialInterval,
			MaxInterval:     cfg.Realtime.ReconnectMaxInterval,
			MaxRetries:      cfg.Realtime.ReconnectMaxRetries,
		},
		PongWait: cfg.Realtime.PongWait,
	})
	if err := ch.Start(ctx); err != nil {
		return fmt.Errorf("start channel: %w", err)
	}
	defer ch.Close()

	var ping <-chan time.Time
	if opts.pingInterval > 0 {
		ticker := time.NewTicker(opts.pingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("disconnecting")
			return nil
		case <-ping:
			if err := ch.Send(ctx, map[string]string{"type": "ping"}); err != nil {
				log.Warn("ping not sent",
					logger.NewField("state", ch.State()),
					logger.NewField("error", err),
				)
				continue
			}
			fmt.Printf("%s -> ping\n", time.Now().Format(time.RFC3339))
		}
	}
}

func printEvent(_ context.Context, ev realtime.Event) error {
	data := string(ev.Data)
	if data == "" {
		data = "{}"
	}
	fmt.Printf("%s <- %s %s\n", time.Now().Format(time.RFC3339), ev.Type, data)
	return nil
}

func storedToken(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Session.Store != config.StoreRedis {
		return token.NewFileStore(cfg.Session.TokenFile).Load(ctx)
	}

	client, err := redis.New(ctx, redis.Config{
		URL:      cfg.Redis.URL,
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		return "", fmt.Errorf("connect redis: %w", err)
	}
	defer client.Close()

	return token.NewRedisStore(client, cfg.Session.TokenTTL).Load(ctx)
}
