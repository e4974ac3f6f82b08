// Package metrics は Prometheus のメトリクスをまとめる。
// グローバルのレジストリは使わず、New ごとに独立したレジストリを持つ。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "english_tutor"

type Metrics struct {
	registry *prometheus.Registry

	quizStarts      prometheus.Counter
	quizCompletions *prometheus.CounterVec
	quizAnswers     *prometheus.CounterVec
	quizSessions    prometheus.Gauge

	tutorRequests *prometheus.CounterVec
	tutorDuration prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		quizStarts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_starts_total",
			Help:      "Total number of quizzes started (including restarts)",
		}),
		quizCompletions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_completions_total",
			Help:      "Total number of completed quizzes by performance band",
		}, []string{"band"}),
		quizAnswers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_answers_total",
			Help:      "Total number of submitted answers",
		}, []string{"result"}), // correct | incorrect
		quizSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quiz_sessions_current",
			Help:      "Number of quiz sessions held in memory",
		}),
		tutorRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tutor_requests_total",
			Help:      "Total number of AI tutor requests by outcome",
		}, []string{"outcome"}), // success | unconfigured | upstream_error | busy
		tutorDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tutor_request_duration_seconds",
			Help:      "Time spent waiting for the language model",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry はテストで値を読むために公開している
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler は /metrics 用のハンドラ
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) QuizStarted() {
	m.quizStarts.Inc()
}

func (m *Metrics) QuizCompleted(band string) {
	m.quizCompletions.WithLabelValues(band).Inc()
}

func (m *Metrics) AnswerSubmitted(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.quizAnswers.WithLabelValues(result).Inc()
}

func (m *Metrics) SetQuizSessions(n int) {
	m.quizSessions.Set(float64(n))
}

func (m *Metrics) TutorRequest(outcome string) {
	m.tutorRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveTutorDuration(d time.Duration) {
	m.tutorDuration.Observe(d.Seconds())
}

// Middleware は chi のルートパターン単位でリクエスト数とレイテンシを記録する。
// パスそのものをラベルにすると系列が増え続けるので使わない。
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
