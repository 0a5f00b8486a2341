package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"khaogully-admin/pkg/retrier"
	"khaogully-admin/pkg/retrier/backoff_adapter"
)

const (
	maxResponseBytes = 10 << 20
	requestIDHeader  = "X-Request-ID"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   retrier.Config
}

// Request описывает один вызов backend.
type Request struct {
	Method string
	// Route шаблон пути для метрик, например /orders/{id}/assign.
	Route string
	Path  string
	Query url.Values
	Body  any
}

type Transport struct {
	service string
	base    *url.URL
	http    httpDoer
	tokens  TokenSource
	retrier retryExecutor
}

// New создаёт транспорт. tokens может быть nil - тогда Authorization не ставится.
func New(service string, cfg Config, tokens TokenSource) (*Transport, error) {
	return NewWithClient(service, cfg, tokens, &http.Client{Timeout: cfg.Timeout})
}

func NewWithClient(service string, cfg Config, tokens TokenSource, client httpDoer) (*Transport, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url %q: unsupported scheme", cfg.BaseURL)
	}

	retryConfig := cfg.Retry
	retryConfig.ShouldRetry = isRetryable

	return &Transport{
		service: service,
		base:    base,
		http:    client,
		tokens:  tokens,
		retrier: backoff_adapter.New(retryConfig),
	}, nil
}

// Do выполняет запрос и декодирует JSON-ответ в out (если out не nil).
// Повторяются только GET: изменения на backend не идемпотентны.
func (t *Transport) Do(ctx context.Context, req Request, out any) error {
	var payload []byte
	if req.Body != nil {
		var err error
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", req.Method, req.Route, err)
		}
	}

	var attempts uint64
	call := func(ctx context.Context) error {
		attempts++
		return t.roundTrip(ctx, req, payload, out)
	}

	start := time.Now()
	var err error
	if req.Method == http.MethodGet {
		err = t.retrier.ExecuteWithContext(ctx, call)
	} else {
		err = call(ctx)
	}
	t.observe(req, start, attempts, err)

	return err
}

func (t *Transport) roundTrip(ctx context.Context, req Request, payload []byte, out any) error {
	target := t.base.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID(ctx))
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", req.Method, req.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return nil
}

type requestIDKey struct{}

// WithRequestID привязывает ID входящего запроса консоли к вызовам backend.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

func requestID(ctx context.Context) string {
	if id, ok := RequestID(ctx); ok {
		return id
	}
	return uuid.NewString()
}

func (t *Transport) observe(req Request, start time.Time, attempts uint64, err error) {
	status := statusLabel(err)
	BackendRequestDuration.WithLabelValues(t.service, req.Method, req.Route, status).Observe(time.Since(start).Seconds())

	if attempts > 1 {
		BackendRetriesTotal.WithLabelValues(t.service, req.Method, req.Route).Inc()
	}
}

func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	return "ERROR"
}
