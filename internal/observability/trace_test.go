package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const incomingTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"

func TestTraceMiddlewareContinuesIncomingTrace(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	var seen trace.SpanContext
	handler := TraceMiddleware(nil)(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = trace.SpanContextFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/staking/", nil)
	req.Header.Set("traceparent", "00-"+incomingTraceID+"-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, incomingTraceID, seen.TraceID().String())
	require.Contains(t, rec.Header().Get("traceparent"), incomingTraceID)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, incomingTraceID, entries[0].ContextMap()["trace_id"])
}

func TestTraceMiddlewareWithoutIncomingTrace(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	handler := TraceMiddleware(nil)(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Header().Get("traceparent"))
	require.Len(t, logs.All(), 1)
	_, ok := logs.All()[0].ContextMap()["trace_id"]
	require.False(t, ok)
}
