package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campaign_sheet_sync"

// Resultados possíveis de uma sincronização
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// SyncRecorder recebe o resultado de cada sincronização de planilha
type SyncRecorder interface {
	ObserveSync(outcome, stage string, duration time.Duration, records int)
}

type SyncMetrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  prometheus.Counter
}

// NewSyncMetrics registra os coletores no registerer informado
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total de sincronizações de planilha por resultado e etapa final.",
		}, []string{"outcome", "stage"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duração das sincronizações de planilha.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"outcome"}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_upserted_total",
			Help:      "Total de registros diários gravados.",
		}),
	}

	reg.MustRegister(m.runs, m.duration, m.records)

	return m
}

func (m *SyncMetrics) ObserveSync(outcome, stage string, duration time.Duration, records int) {
	m.runs.WithLabelValues(outcome, stage).Inc()
	m.duration.WithLabelValues(outcome).Observe(duration.Seconds())
	if records > 0 {
		m.records.Add(float64(records))
	}
}

// HTTPRecorder recebe o resultado de cada requisição HTTP
type HTTPRecorder interface {
	ObserveRequest(method, status string, duration time.Duration)
}

type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por método e status.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(m.requests, m.duration)

	return m
}

func (m *HTTPMetrics) ObserveRequest(method, status string, duration time.Duration) {
	m.requests.WithLabelValues(method, status).Inc()
	m.duration.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler expõe os coletores do gatherer no formato do Prometheus
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop descarta as observações
type Noop struct{}

func (Noop) ObserveSync(string, string, time.Duration, int) {}

func (Noop) ObserveRequest(string, string, time.Duration) {}
