package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/bookings", "200", 0.5)
	RecordHTTPRequest("GET", "/bookings", "200", 0.1)
	RecordHTTPRequest("POST", "/bookings", "400", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/bookings", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordBookingCreated(t *testing.T) {
	testCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "barbershop_bookings_created_total_test",
		Help: "Total number of bookings created",
	})

	oldCounter := BookingsCreatedTotal
	BookingsCreatedTotal = testCounter
	defer func() { BookingsCreatedTotal = oldCounter }()

	RecordBookingCreated()
	RecordBookingCreated()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter))
}

func TestRecordBookingStatusUpdate(t *testing.T) {
	BookingStatusUpdatesTotal.Reset()

	RecordBookingStatusUpdate("confirmed")
	RecordBookingStatusUpdate("cancelled")
	RecordBookingStatusUpdate("on the way")
	RecordBookingStatusUpdate("late")

	assert.Equal(t, float64(1), testutil.ToFloat64(BookingStatusUpdatesTotal.WithLabelValues("confirmed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingStatusUpdatesTotal.WithLabelValues("cancelled")))
	assert.Equal(t, float64(2), testutil.ToFloat64(BookingStatusUpdatesTotal.WithLabelValues("other")))
}

func TestRecordBonusAdjustment(t *testing.T) {
	BonusAdjustmentsTotal.Reset()

	RecordBonusAdjustment(50)
	RecordBonusAdjustment(-20)
	RecordBonusAdjustment(0)
	RecordBonusAdjustment(5)

	assert.Equal(t, float64(2), testutil.ToFloat64(BonusAdjustmentsTotal.WithLabelValues("credit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BonusAdjustmentsTotal.WithLabelValues("debit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BonusAdjustmentsTotal.WithLabelValues("zero")))
}

func TestRecordCatalogCache(t *testing.T) {
	CatalogCacheTotal.Reset()

	RecordCatalogCache("salons", CacheMiss)
	RecordCatalogCache("salons", CacheHit)
	RecordCatalogCache("salons", CacheHit)
	RecordCatalogCache("masters", CacheError)

	assert.Equal(t, float64(2), testutil.ToFloat64(CatalogCacheTotal.WithLabelValues("salons", CacheHit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(CatalogCacheTotal.WithLabelValues("salons", CacheMiss)))
	assert.Equal(t, float64(1), testutil.ToFloat64(CatalogCacheTotal.WithLabelValues("masters", CacheError)))
}

func TestRecordRateLimitHit(t *testing.T) {
	before := testutil.ToFloat64(RateLimitHitsTotal)
	RecordRateLimitHit()
	assert.Equal(t, before+1, testutil.ToFloat64(RateLimitHitsTotal))
}
