package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordTickerResult(t *testing.T) {
	before := testutil.ToFloat64(ingestedPrices.WithLabelValues("btc_usd", OutcomeStored))
	RecordTickerResult("btc_usd", OutcomeStored)
	RecordTickerResult("btc_usd", OutcomeStored)
	after := testutil.ToFloat64(ingestedPrices.WithLabelValues("btc_usd", OutcomeStored))
	require.Equal(t, before+2, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	require.Equal(
		t,
		float64(1),
		testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")),
	)

	done := TrackInFlight()
	require.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))
	done()
	require.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}

func TestHandler(t *testing.T) {
	ObserveCycle(120 * time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "pricefeed_ingestion_cycle_duration_seconds"))
}
