package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStartTiming_WithoutHeaderIsNoop(t *testing.T) {
	m := StartTiming(context.Background(), "derive", "")
	m.Stop()

	var nilMetric *Metric
	nilMetric.Stop()
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := StartTiming(r.Context(), "derive", "join, filter and sort")
		m.Stop()
		w.WriteHeader(http.StatusOK)
	})

	t.Run("enabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Middleware(next, true).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if got := rec.Header().Get("Server-Timing"); !strings.HasPrefix(got, "derive") {
			t.Errorf("expected derive metric, got %q", got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Middleware(next, false).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if got := rec.Header().Get("Server-Timing"); got != "" {
			t.Errorf("expected no Server-Timing header, got %q", got)
		}
	})
}
