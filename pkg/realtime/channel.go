// Package realtime держит websocket-канал инвалидации, по которому
// backend сообщает об изменениях заказов и позиций водителей.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/retrier"
	"khaogully-admin/pkg/retrier/backoff_adapter"
)

type State string

const (
	StateIdle         State = "idle"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateDisconnected State = "disconnected"
	StateFailed       State = "failed"
	StateClosed       State = "closed"
)

const (
	defaultPongWait         = 60 * time.Second
	defaultWriteWait        = 10 * time.Second
	defaultHandshakeTimeout = 10 * time.Second

	maxMessageSize = 64 << 10
)

type Config struct {
	Name     string
	URL      URLBuilder
	Handlers map[EventType]Handler
	// Fallback получает события, для которых нет обработчика в Handlers.
	Fallback Handler

	// Reconnect политика переподключения. MaxRetries ограничивает число
	// неудачных попыток подряд, после чего канал переходит в failed.
	Reconnect retrier.Config

	// PingPeriod должен быть меньше PongWait.
	PingPeriod       time.Duration
	PongWait         time.Duration
	WriteWait        time.Duration
	HandshakeTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.PongWait <= 0 {
		c.PongWait = defaultPongWait
	}
	if c.PingPeriod <= 0 {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	if c.WriteWait <= 0 {
		c.WriteWait = defaultWriteWait
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = defaultHandshakeTimeout
	}

	r := &c.Reconnect
	if r.InitialInterval <= 0 {
		r.InitialInterval = time.Second
	}
	if r.MaxInterval <= 0 {
		r.MaxInterval = 30 * time.Second
	}
	if r.Multiplier <= 0 {
		r.Multiplier = 2
	}
	if r.Randomization <= 0 {
		r.Randomization = 0.5
	}
	if r.MaxRetries == 0 {
		r.MaxRetries = 10
	}
	return c
}

type Channel struct {
	cfg    Config
	log    logger.Logger
	tokens TokenSource
	dialer *websocket.Dialer

	mu      sync.Mutex
	state   State
	conn    *websocket.Conn
	cancel  context.CancelFunc
	started bool

	writeMu   sync.Mutex
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func New(log logger.Logger, tokens TokenSource, cfg Config) *Channel {
	cfg = cfg.withDefaults()
	return &Channel{
		cfg:    cfg,
		log:    log.With(logger.NewField("channel", cfg.Name)),
		tokens: tokens,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.HandshakeTimeout,
		},
		state: StateIdle,
	}
}

func (c *Channel) Name() string {
	return c.cfg.Name
}

func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start открывает канал в фоне. Без токена сессии ничего не открывается
// и возвращается ErrNoToken.
func (c *Channel) Start(ctx context.Context) error {
	if c.tokens.Token() == "" {
		return ErrNoToken
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.state == StateClosed:
		return ErrClosed
	case c.started:
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.started = true

	c.wg.Add(1)
	go c.run(runCtx)

	return nil
}

// Close останавливает цикл, закрывает сокет и ждёт горутины. Повторный вызов ничего не делает.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		cancel := c.cancel
		c.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		c.wg.Wait()

		c.setState(StateClosed)
		c.log.Info("realtime channel closed")
	})
	return nil
}

// Send пишет один JSON-кадр в открытое соединение.
func (c *Channel) Send(ctx context.Context, v any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	deadline := time.Now().Add(c.cfg.WriteWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := conn.WriteJSON(v); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}

func (c *Channel) run(ctx context.Context) {
	defer c.wg.Done()

	r := backoff_adapter.New(c.retryConfig())
	for {
		var conn *websocket.Conn
		err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
			var dialErr error
			conn, dialErr = c.dial(ctx)
			return dialErr
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.setState(StateFailed)
			c.log.Error("realtime channel gave up, polling only", logger.NewField("error", err))
			return
		}

		c.serve(ctx, conn)
		if ctx.Err() != nil {
			return
		}
		c.setState(StateDisconnected)

		// пауза перед новой серией попыток после обрыва
		timer := time.NewTimer(c.cfg.Reconnect.InitialInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (c *Channel) retryConfig() retrier.Config {
	cfg := c.cfg.Reconnect
	cfg.ShouldRetry = func(err error) bool {
		return !errors.Is(err, ErrNoToken) &&
			!errors.Is(err, ErrRejected) &&
			!errors.Is(err, errBadURL)
	}
	cfg.Notify = func(err error, next time.Duration) {
		c.setState(StateDisconnected)
		c.log.Warn("realtime dial failed, retrying",
			logger.NewField("error", err),
			logger.NewField("next", next),
		)
	}
	return cfg
}

func (c *Channel) dial(ctx context.Context) (*websocket.Conn, error) {
	token := c.tokens.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	c.setState(StateConnecting)

	target, err := c.cfg.URL(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadURL, err)
	}

	conn, resp, err := c.dialer.DialContext(ctx, target, nil)
	if err != nil {
		connectionsTotal.WithLabelValues(c.cfg.Name, "error").Inc()
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial: %w", err)
	}
	connectionsTotal.WithLabelValues(c.cfg.Name, "connected").Inc()

	conn.SetReadLimit(maxMessageSize)

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	c.log.Info("realtime channel connected")
	return conn, nil
}

func (c *Channel) serve(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.keepalive(conn, done)
	}()
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.cfg.WriteWait))
			_ = conn.Close()
		case <-done:
		}
	}()

	c.readLoop(ctx, conn)

	close(done)
	wg.Wait()

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()
	_ = conn.Close()
}

func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) {
	extend := func() error {
		return conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	}
	_ = extend()
	conn.SetPongHandler(func(string) error { return extend() })

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.log.Warn("realtime connection dropped", logger.NewField("error", err))
			}
			return
		}
		_ = extend()
		c.dispatch(ctx, msg)
	}
}

func (c *Channel) dispatch(ctx context.Context, raw []byte) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		decodeErrorsTotal.WithLabelValues(c.cfg.Name).Inc()
		c.log.Warn("malformed realtime frame", logger.NewField("error", err))
		return
	}
	if ev.Type == "" {
		decodeErrorsTotal.WithLabelValues(c.cfg.Name).Inc()
		c.log.Warn("realtime frame without type")
		return
	}

	h, ok := c.cfg.Handlers[ev.Type]
	if !ok && c.cfg.Fallback != nil {
		h, ok = c.cfg.Fallback, true
	}
	if !ok {
		eventsTotal.WithLabelValues(c.cfg.Name, "unhandled").Inc()
		c.log.Debug("ignoring realtime event", logger.NewField("type", ev.Type))
		return
	}
	eventsTotal.WithLabelValues(c.cfg.Name, string(ev.Type)).Inc()

	if err := h(ctx, ev); err != nil {
		c.log.Warn("realtime handler failed",
			logger.NewField("type", ev.Type),
			logger.NewField("error", err),
		)
	}
}

func (c *Channel) keepalive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.cfg.WriteWait)); err != nil {
				c.log.Debug("realtime ping failed", logger.NewField("error", err))
				_ = conn.Close()
				return
			}
		}
	}
}

func (c *Channel) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateClosed {
		return
	}
	c.state = s
}
