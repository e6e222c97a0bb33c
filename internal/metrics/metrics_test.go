package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/votes/{placeID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/votes/{placeID}", "418"))

	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/votes/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/votes/{placeID}", "418"))
	assert.Equal(t, float64(3), after-before)
}

func TestRecordNotifications(t *testing.T) {
	ok := testutil.ToFloat64(notificationsSent.WithLabelValues(KindReview, "true"))
	failed := testutil.ToFloat64(notificationsSent.WithLabelValues(KindReview, "false"))

	RecordNotifications(KindReview, 2, 1)
	RecordNotifications(KindReview, 0, 0)

	assert.Equal(t, ok+2, testutil.ToFloat64(notificationsSent.WithLabelValues(KindReview, "true")))
	assert.Equal(t, failed+1, testutil.ToFloat64(notificationsSent.WithLabelValues(KindReview, "false")))
}

func TestHandlerServesRegistry(t *testing.T) {
	RecordNotifications(KindWelcome, 1, 0)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bazaar_notifications_sent_total")
}
