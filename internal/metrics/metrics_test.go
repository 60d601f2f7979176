package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/registro/pkg/core"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/personas", http.StatusOK, time.Now())
	m.ObserveRequest(http.MethodGet, "/api/personas", http.StatusOK, time.Now())
	m.ObserveRequest(http.MethodPost, "/api/personas", http.StatusBadRequest, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/personas", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/api/personas", "400")))
}

func TestReportPersistenceError(t *testing.T) {
	m := New()

	m.ReportPersistenceError(&core.PersistenceError{Op: "save", Path: "x.json", Err: errors.New("disk full")})
	m.ReportPersistenceError(errors.New("plain"))
	m.ReportPersistenceError(nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistenceFailures.WithLabelValues("save")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistenceFailures.WithLabelValues("unknown")))
}

func TestTrackRecordsAndHandler(t *testing.T) {
	m := New()
	count := 3
	m.TrackRecords(func() int { return count })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registro_records 3")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Now())
		m.ReportPersistenceError(errors.New("boom"))
		m.TrackRecords(func() int { return 1 })
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
