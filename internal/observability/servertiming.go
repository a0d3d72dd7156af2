// Package observability exposes request timing through the Server-Timing header.
package observability

import (
	"context"
	"net/http"

	servertiming "github.com/mitchellh/go-server-timing"
)

// Metric wraps a running server-timing metric.
type Metric struct {
	metric *servertiming.Metric
}

// Stop stops the timing metric. It is safe to call on a no-op metric.
func (m *Metric) Stop() {
	if m != nil && m.metric != nil {
		m.metric.Stop()
	}
}

// StartTiming starts a server-timing metric with the given name and
// description. When ctx carries no timing header the returned metric is a
// no-op.
func StartTiming(ctx context.Context, name, description string) *Metric {
	timing := servertiming.FromContext(ctx)
	if timing == nil {
		return &Metric{}
	}

	metric := timing.NewMetric(name)
	if description != "" {
		metric = metric.WithDesc(description)
	}
	return &Metric{metric: metric.Start()}
}

// Middleware adds a Server-Timing header to every response of next when
// enabled; otherwise next is returned unchanged.
func Middleware(next http.Handler, enabled bool) http.Handler {
	if !enabled {
		return next
	}
	return servertiming.Middleware(next, nil)
}
