package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"

	"timeaify/internal/platform/notify"
)

// Recorder exports focus activity as Prometheus collectors. It doubles as a
// notify.Notifier so it can sit in the same fanout as the UI and the log.
type Recorder struct {
	notifications *prom.CounterVec
	sessionMin    *prom.HistogramVec
	progress      prom.Gauge
}

func NewRecorder(reg prom.Registerer) *Recorder {
	r := &Recorder{
		notifications: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "timeaify",
			Name:      "notifications_total",
			Help:      "Notifications emitted by kind",
		}, []string{"kind"}),
		sessionMin: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "timeaify",
			Name:      "session_duration_minutes",
			Help:      "Recorded duration of finalized focus sessions",
			Buckets:   []float64{1, 5, 15, 25, 45, 60, 90, 120},
		}, []string{"outcome"}),
		progress: prom.NewGauge(prom.GaugeOpts{
			Namespace: "timeaify",
			Name:      "session_progress_percent",
			Help:      "Progress of the active focus session",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.notifications, r.sessionMin, r.progress)
	}
	return r
}

func (r *Recorder) Notify(kind notify.Kind, _, _ string) {
	r.notifications.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) ObserveSession(minutes float64, completed bool) {
	outcome := "stopped"
	if completed {
		outcome = "completed"
	}
	r.sessionMin.WithLabelValues(outcome).Observe(minutes)
}

func (r *Recorder) SetProgress(percent float64) {
	r.progress.Set(percent)
}

func HTTPHandler(g prom.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prom.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", HTTPHandler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
