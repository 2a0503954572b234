package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.RecordsAccepted.WithLabelValues(ResultOK).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.RecordsAccepted.WithLabelValues(ResultOK)))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.RecordsAccepted.WithLabelValues(ResultOK)))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SyncRounds.WithLabelValues(ResultRejected).Add(2)
	m.EntriesServed.Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `epr_sync_sync_rounds_total{result="rejected"} 2`)
	assert.Contains(t, string(body), "epr_sync_log_entries_served_total 3")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultOK, Result(true))
	assert.Equal(t, ResultFailed, Result(false))
}
