package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"coopart/internal/apperr"
)

func TestResult(t *testing.T) {
	cases := map[string]error{
		"success":     nil,
		"validation":  fmt.Errorf("%w: no image", apperr.ErrValidation),
		"storage":     fmt.Errorf("%w: put", apperr.ErrStorageUnavailable),
		"decode":      apperr.ErrDecodeFailure,
		"ledger":      fmt.Errorf("mint: %w", apperr.ErrLedgerCall),
		"superseded":  apperr.ErrSuperseded,
		"no_draft":    apperr.ErrNoDraft,
		"in_progress": fmt.Errorf("mint: %w", apperr.ErrInProgress),
		"error":       errors.New("other"),
	}
	for want, err := range cases {
		assert.Equal(t, want, Result(err), want)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveUpload(nil)
	m.ObserveUpload(apperr.ErrDecodeFailure)
	m.ObserveMint(nil)
	m.ObserveLedgerCall("mint_layer", nil)
	m.ObserveLedgerCall("mint_layer", apperr.ErrLedgerCall)
	m.ObserveContent("image", 1024)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Uploads.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Uploads.WithLabelValues("decode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mints.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LedgerCalls.WithLabelValues("mint_layer", "ledger")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ContentBytes))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpload(nil)
		m.ObserveMint(nil)
		m.ObserveLedgerCall("get_layers", nil)
		m.ObserveContent("metadata", 10)
	})
}

func TestTrackWorkspaces(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := 0
	g := TrackWorkspaces(reg, func() int { return n })

	assert.Equal(t, 0.0, testutil.ToFloat64(g))
	n = 3
	assert.Equal(t, 3.0, testutil.ToFloat64(g))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "coopart_workspaces"))
}
