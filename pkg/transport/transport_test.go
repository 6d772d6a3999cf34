package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconlabs/beacon/pkg/transport"
)

func TestHTTPTransport_SuccessInvokesCallback(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var acked atomic.Bool
	tr := transport.New()
	tr.Post(context.Background(), srv.URL, map[string]string{"visit_token": "abc"}, func() {
		acked.Store(true)
	})

	require.Eventually(t, acked.Load, time.Second, 10*time.Millisecond)
	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "abc", decoded["visit_token"])
}

func TestHTTPTransport_NonSuccessSkipsCallback(t *testing.T) {
	t.Parallel()

	requests := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- struct{}{}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var acked atomic.Bool
	tr := transport.New()
	tr.Post(context.Background(), srv.URL, map[string]string{}, func() {
		acked.Store(true)
	})

	select {
	case <-requests:
	case <-time.After(time.Second):
		t.Fatal("request never reached the server")
	}

	// give a wrong callback time to fire before asserting it never did
	time.Sleep(50 * time.Millisecond)
	assert.False(t, acked.Load(), "callback must not fire on a non-2xx response")
}

func TestHTTPTransport_NetworkFailureSkipsCallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	var acked atomic.Bool
	tr := transport.New()
	tr.Post(context.Background(), srv.URL, map[string]string{}, func() {
		acked.Store(true)
	})

	time.Sleep(50 * time.Millisecond)
	assert.False(t, acked.Load(), "callback must not fire on network failure")
}

func TestHTTPTransport_UnserializableBodyDropped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unserializable payload")
	}))
	defer srv.Close()

	tr := transport.New()
	assert.NotPanics(t, func() {
		tr.Post(context.Background(), srv.URL, func() {}, nil)
	})
	time.Sleep(50 * time.Millisecond)
}

func TestHTTPTransport_NilCallback(t *testing.T) {
	t.Parallel()

	done := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done <- struct{}{}
	}))
	defer srv.Close()

	tr := transport.New()
	assert.NotPanics(t, func() {
		tr.Post(context.Background(), srv.URL, map[string]string{}, nil)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("request never reached the server")
	}
}
