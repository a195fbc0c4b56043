package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
	"github.com/iliyamo/bus-booking-gateway/internal/booking"
	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

// fakeBackend spins up an httptest server that mimics the slice of the
// REST backend the handlers touch.  calls counts every request that
// reaches it, so tests can assert that rejected submissions never go
// upstream.
type fakeBackend struct {
	bus         model.Bus
	route       model.Route
	booking     model.Booking
	bookedSeats []string
	paySuccess  bool

	calls           int
	cancelCalls     int
	createdBookings []model.BookingRequest
	createdBuses    []model.Bus
	payments        []model.PaymentRequest
}

func (f *fakeBackend) serve(t *testing.T) *backend.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /buses/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.bus)
	})
	mux.HandleFunc("POST /buses", func(w http.ResponseWriter, r *http.Request) {
		var bus model.Bus
		json.NewDecoder(r.Body).Decode(&bus)
		f.createdBuses = append(f.createdBuses, bus)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(bus)
	})
	mux.HandleFunc("GET /routes/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.route)
	})
	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Booking{f.booking})
	})
	mux.HandleFunc("GET /bookings/booked-seats", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.bookedSeats)
	})
	mux.HandleFunc("GET /bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.booking)
	})
	mux.HandleFunc("GET /bookings/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Booking{f.booking})
	})
	mux.HandleFunc("PUT /bookings/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		f.cancelCalls++
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /bookings", func(w http.ResponseWriter, r *http.Request) {
		var req model.BookingRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.createdBookings = append(f.createdBookings, req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.BookingCreated{ID: "bk-1"})
	})
	mux.HandleFunc("POST /payments/process", func(w http.ResponseWriter, r *http.Request) {
		var req model.PaymentRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.payments = append(f.payments, req)
		json.NewEncoder(w).Encode(model.PaymentResult{Success: f.paySuccess, TransactionID: "tx-1"})
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, 2*time.Second)
}

func defaultFake() *fakeBackend {
	return &fakeBackend{
		bus: model.Bus{ID: "bus-1", BusName: "Night Rider", Rows: 2, SeatsPerRow: 2, IsActive: true},
		route: model.Route{
			ID: "route-1", BusID: "bus-1",
			FromCity: "Mumbai", ToCity: "Pune",
			BaseFareCents:  50000,
			BoardingPoints: []string{"Dadar"},
			DroppingPoints: []string{"Shivajinagar"},
			IsActive:       true,
		},
		booking: model.Booking{
			ID: "bk-1", UserID: "42", BusID: "bus-1", RouteID: "route-1",
			SeatNumbers: []string{"1A"}, Status: "CONFIRMED",
		},
		paySuccess: true,
	}
}

func submitBody(seats ...string) string {
	body := map[string]any{
		"busId":       "bus-1",
		"routeId":     "route-1",
		"journeyDate": "2026-09-14",
		"seats":       seats,
		"passenger": map[string]any{
			"name":  "Asha Rao",
			"email": "asha@example.com",
			"phone": "9876543210",
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

// doSubmit runs one booking submission through the handler with an
// authenticated context, the way the JWT middleware would set it up.
func doSubmit(t *testing.T, f *fakeBackend, body string) *httptest.ResponseRecorder {
	t.Helper()
	api := f.serve(t)
	h := NewBookingHandler(api, &booking.Submitter{API: api, PaymentMethod: "STRIPE", GatewayTag: "stripe"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "42")
	c.Set("role", "CUSTOMER")

	require.NoError(t, h.Submit(c))
	return rec
}

func TestSubmitConfirmedBooking(t *testing.T) {
	f := defaultFake()
	rec := doSubmit(t, f, submitBody("1A", "2B"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bk-1", resp["booking_id"])
	assert.Equal(t, string(booking.StatusConfirmed), resp["status"])
	assert.Equal(t, float64(100000), resp["total_fare"])

	require.Len(t, f.createdBookings, 1)
	created := f.createdBookings[0]
	assert.Equal(t, "42", created.UserID)
	assert.Equal(t, []string{"1A", "2B"}, created.SeatNumbers)
	assert.Equal(t, model.PaymentPending, created.PaymentStatus)
	require.Len(t, f.payments, 1)
	assert.Equal(t, "bk-1", f.payments[0].BookingID)
	assert.Equal(t, int64(100000), f.payments[0].AmountCents)
}

func TestSubmitBookedSeatConflict(t *testing.T) {
	f := defaultFake()
	f.bookedSeats = []string{"1A"}
	rec := doSubmit(t, f, submitBody("1A", "2B"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp struct {
		Unavailable []string `json:"unavailable"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"1A"}, resp.Unavailable)
	assert.Empty(t, f.createdBookings, "conflicting submissions must not reach the backend")
}

func TestSubmitUnknownSeatRejected(t *testing.T) {
	f := defaultFake()
	rec := doSubmit(t, f, submitBody("9Z"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.createdBookings)
}

func TestSubmitPaymentDeclined(t *testing.T) {
	f := defaultFake()
	f.paySuccess = false
	rec := doSubmit(t, f, submitBody("1A"))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(booking.StatusPaymentDeclined), resp["status"])
	assert.NotContains(t, resp, "booking_id")
}

func TestSubmitDuplicateSeatsCollapse(t *testing.T) {
	f := defaultFake()
	rec := doSubmit(t, f, submitBody("1A", "1A", "2B"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, f.createdBookings, 1)
	assert.Equal(t, []string{"1A", "2B"}, f.createdBookings[0].SeatNumbers)
	assert.Equal(t, 2, f.createdBookings[0].NumberOfSeats)
}

func TestSubmitMissingPassengerFieldsMakesNoBackendCalls(t *testing.T) {
	f := defaultFake()
	body := `{"busId":"bus-1","routeId":"route-1","journeyDate":"2026-09-14","seats":["1A"],"passenger":{"name":"","email":"","phone":""}}`
	rec := doSubmit(t, f, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// A request that could never book must be rejected before any
	// upstream traffic, not merely before the booking creation.
	assert.Equal(t, 0, f.calls)
}

func TestSubmitBadJourneyDateMakesNoBackendCalls(t *testing.T) {
	f := defaultFake()
	body := `{"busId":"bus-1","routeId":"route-1","journeyDate":"14-09-2026","seats":["1A"],"passenger":{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210"}}`
	rec := doSubmit(t, f, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, f.calls)
}
