package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordTransition(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.RecordTransition(entity.PackageStatusWaiting)
	m.RecordTransition(entity.PackageStatusWaiting)
	m.RecordTransition(entity.PackageStatusDelivered)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("waiting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("delivered")))
}

func TestMetrics_RecordFailure_LabelsByKind(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.RecordFailure("return", domainerrors.PassedDeadline())
	m.RecordFailure("return", errors.Wrap(domainerrors.NotFound("package"), "lookup"))
	m.RecordFailure("return", errors.New("connection refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("return", "PASSED_DEADLINE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("return", "NOT_FOUND")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("return", "internal")))
}

func TestMetrics_RecordNotification(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.RecordNotification(true)
	m.RecordNotification(false)
	m.RecordNotification(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("delivered")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("failed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordTransition(entity.PackageStatusPickup)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `parcel_package_transitions_total{status="pickup"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
