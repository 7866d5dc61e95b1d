package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.ComplaintSubmitted("Room", "Electrical")
		m.DemoReset()
	})
}

func TestCounters(t *testing.T) {
	m := New()

	m.ComplaintSubmitted("Room", "Plumbing")
	m.ComplaintSubmitted("Room", "Plumbing")
	m.MaterialStatus("available")
	m.Login("Admin")

	body := scrape(t, m)
	assert.Contains(t, body, `maintenance_complaints_submitted_total{category="Plumbing",type="Room"} 2`)
	assert.Contains(t, body, `maintenance_material_requests_total{status="available"} 1`)
	assert.Contains(t, body, `maintenance_logins_total{role="Admin"} 1`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "", 404, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `maintenance_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
