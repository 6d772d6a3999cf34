package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/beaconlabs/beacon/pkg/logger"
)

// Transport delivers a JSON payload to a collector URL. Post is
// fire-and-forget: onSuccess is invoked only when the collector responds
// with a success status, and every other outcome (marshal failure, network
// error, non-success status) is swallowed. Retries are not the transport's
// job; the caller's persisted queue provides them across restarts.
type Transport interface {
	Post(ctx context.Context, url string, body any, onSuccess func())
}

// HTTPTransport implements Transport over a pooled net/http client.
type HTTPTransport struct {
	client *http.Client
	log    *slog.Logger
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithClient sets a custom HTTP client. Nil clients are ignored.
func WithClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithLogger sets the logger used for debug output. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(t *HTTPTransport) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates an HTTP transport. The default client pools connections to the
// collector and bounds each request with a timeout so a dead collector does
// not accumulate goroutines.
func New(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Post marshals body to JSON and delivers it to url in the background.
// onSuccess fires only on a 2xx response.
func (t *HTTPTransport) Post(ctx context.Context, url string, body any, onSuccess func()) {
	payload, err := json.Marshal(body)
	if err != nil {
		t.log.DebugContext(ctx, "telemetry payload not serializable", logger.Error(err))
		return
	}

	go t.send(ctx, url, payload, onSuccess)
}

func (t *HTTPTransport) send(ctx context.Context, url string, payload []byte, onSuccess func()) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.log.DebugContext(ctx, "telemetry request not buildable", slog.String("url", url), logger.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.log.DebugContext(ctx, "telemetry post failed", slog.String("url", url), logger.Error(err))
		return
	}
	defer func() {
		// drain so the connection returns to the pool
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.log.DebugContext(ctx, "telemetry post rejected",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return
	}

	if onSuccess != nil {
		onSuccess()
	}
}
