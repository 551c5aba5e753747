package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(bookingCreated.WithLabelValues("WAITING"))
	IncBookingCreated("WAITING")
	assert.InDelta(t, before+1, testutil.ToFloat64(bookingCreated.WithLabelValues("WAITING")), 0.0001)

	before = testutil.ToFloat64(bookingDecision.WithLabelValues("APPROVED"))
	IncBookingDecision("APPROVED")
	assert.InDelta(t, before+1, testutil.ToFloat64(bookingDecision.WithLabelValues("APPROVED")), 0.0001)

	before = testutil.ToFloat64(bookingRejected.WithLabelValues("owner"))
	IncBookingRejected("owner")
	assert.InDelta(t, before+1, testutil.ToFloat64(bookingRejected.WithLabelValues("owner")), 0.0001)

	before = testutil.ToFloat64(commentCreated)
	IncCommentCreated()
	assert.InDelta(t, before+1, testutil.ToFloat64(commentCreated), 0.0001)
}

func TestHandler(t *testing.T) {
	IncBookingCreated("WAITING")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "shareit_booking_created_total"))
}
