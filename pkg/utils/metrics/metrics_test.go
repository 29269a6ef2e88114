package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/secmon-lab/vantage/pkg/utils/metrics"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(metrics.LegacyWrites.WithLabelValues("set", metrics.ResultFailure))
	metrics.LegacyWrites.WithLabelValues("set", metrics.ResultFailure).Inc()
	after := testutil.ToFloat64(metrics.LegacyWrites.WithLabelValues("set", metrics.ResultFailure))
	gt.Number(t, after-before).Equal(1)
}

func TestHandler(t *testing.T) {
	metrics.ConfigTransitions.WithLabelValues("set_theme").Inc()

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	gt.Number(t, resp.StatusCode).Equal(http.StatusOK)
	body, err := io.ReadAll(resp.Body)
	gt.NoError(t, err).Required()
	gt.String(t, string(body)).Contains(`vantage_config_transitions_total{action="set_theme"}`)
	gt.String(t, string(body)).Contains("go_goroutines")
}
