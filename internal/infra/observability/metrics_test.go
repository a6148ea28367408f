package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordReportCache(true)
	m.RecordReportCache(false)
	m.RecordReportCache(false)
	m.RecordMalformedRecords("dashboard", 3)

	if got := testutil.ToFloat64(m.reportCache.WithLabelValues("hit")); got != 1 {
		t.Errorf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.reportCache.WithLabelValues("miss")); got != 2 {
		t.Errorf("expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(m.malformedRecords.WithLabelValues("dashboard")); got != 3 {
		t.Errorf("expected 3 malformed records, got %v", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/dashboard", http.MethodGet, http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `rental_ledger_http_request_duration_seconds_count{method="GET",route="/api/v1/dashboard",status="200"} 1`) {
		t.Errorf("expected request histogram in output:\n%s", rec.Body.String())
	}
}

func TestNewMetrics_CanBeCalledTwice(t *testing.T) {
	NewMetrics()
	NewMetrics()
}
