// Package metrics holds the pipeline and ledger Prometheus metrics.
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"coopart/internal/apperr"
)

// Metrics holds all pipeline metrics.
type Metrics struct {
	Uploads      *prometheus.CounterVec
	Mints        *prometheus.CounterVec
	LedgerCalls  *prometheus.CounterVec
	ContentBytes *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Uploads: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coopart_uploads_total",
				Help: "Total number of tile uploads by outcome",
			},
			[]string{"result"},
		),
		Mints: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coopart_mints_total",
				Help: "Total number of mint attempts by outcome",
			},
			[]string{"result"},
		),
		LedgerCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coopart_ledger_calls_total",
				Help: "Total number of ledger calls by method and outcome",
			},
			[]string{"method", "result"},
		),
		ContentBytes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coopart_content_bytes",
				Help:    "Size of blobs written to the content store",
				Buckets: prometheus.ExponentialBuckets(256, 4, 10),
			},
			[]string{"kind"},
		),
	}
}

// Result classifies err into a metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperr.ErrValidation):
		return "validation"
	case errors.Is(err, apperr.ErrStorageUnavailable):
		return "storage"
	case errors.Is(err, apperr.ErrDecodeFailure):
		return "decode"
	case errors.Is(err, apperr.ErrLedgerCall):
		return "ledger"
	case errors.Is(err, apperr.ErrSuperseded):
		return "superseded"
	case errors.Is(err, apperr.ErrNoDraft):
		return "no_draft"
	case errors.Is(err, apperr.ErrInProgress):
		return "in_progress"
	default:
		return "error"
	}
}

// TrackWorkspaces exports count as the number of live account workspaces.
func TrackWorkspaces(reg prometheus.Registerer, count func() int) prometheus.GaugeFunc {
	return promauto.With(reg).NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "coopart_workspaces",
			Help: "Number of account workspaces held in memory",
		},
		func() float64 { return float64(count()) },
	)
}

func (m *Metrics) ObserveUpload(err error) {
	if m == nil {
		return
	}
	m.Uploads.WithLabelValues(Result(err)).Inc()
}

func (m *Metrics) ObserveMint(err error) {
	if m == nil {
		return
	}
	m.Mints.WithLabelValues(Result(err)).Inc()
}

// ObserveLedgerCall has the shape of ledger.CallObserver.
func (m *Metrics) ObserveLedgerCall(method string, err error) {
	if m == nil {
		return
	}
	m.LedgerCalls.WithLabelValues(method, Result(err)).Inc()
}

// ObserveContent records a blob of n bytes written as kind ("image" or "metadata").
func (m *Metrics) ObserveContent(kind string, n int) {
	if m == nil {
		return
	}
	m.ContentBytes.WithLabelValues(kind).Observe(float64(n))
}
