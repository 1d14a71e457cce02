package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGatewayCall(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequests.WithLabelValues("ListEvents", "ok"))

	RecordGatewayCall("ListEvents", "ok", 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(gatewayRequests.WithLabelValues("ListEvents", "ok")))
}

func TestRecordHTTPRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))

	RecordHTTPRequest("GET", "", 404)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordStaleView(t *testing.T) {
	before := testutil.ToFloat64(staleViews.WithLabelValues("browse"))
	RecordStaleView("browse")
	assert.Equal(t, before+1, testutil.ToFloat64(staleViews.WithLabelValues("browse")))
}
