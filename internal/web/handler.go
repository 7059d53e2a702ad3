// Package web serves the HTML fragments and the HTTP health probe.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/AryanPandeyy/opencap.co/internal/web/footer"
	"github.com/AryanPandeyy/opencap.co/internal/web/site"
)

// ReadyFunc reports whether the service's dependencies are reachable.
type ReadyFunc func(ctx context.Context) error

// NewHandler returns the HTTP handler: GET /footer renders the footer fragment
// and GET /healthz answers 200 when ready is nil or succeeds, 503 otherwise.
// Requests are traced with otelhttp.
func NewHandler(s site.Site, ready ReadyFunc, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	mux := http.NewServeMux()
	mux.Handle("GET /footer", templ.Handler(footer.Footer(s),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			log.ErrorContext(r.Context(), "render footer failed", "error", err)
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", "error", err)
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return otelhttp.NewHandler(mux, "web",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
