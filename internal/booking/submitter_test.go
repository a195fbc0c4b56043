package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
	"github.com/iliyamo/bus-booking-gateway/internal/queue"
	"github.com/iliyamo/bus-booking-gateway/internal/seat"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CreateBooking(ctx context.Context, req model.BookingRequest) (model.BookingCreated, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.BookingCreated), args.Error(1)
}

func (m *MockAPI) ProcessPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.PaymentResult), args.Error(1)
}

func testRequest() Request {
	return Request{
		UserID: "42",
		Bus: model.Bus{
			ID:          "bus-1",
			BusName:     "Night Rider",
			Rows:        10,
			SeatsPerRow: 4,
		},
		Route: model.Route{
			ID:             "route-1",
			BusID:          "bus-1",
			FromCity:       "Mumbai",
			ToCity:         "Pune",
			BaseFareCents:  50000,
			BoardingPoints: []string{"Dadar"},
			DroppingPoints: []string{"Shivajinagar"},
		},
		JourneyDate: "2026-09-14",
		Passenger: model.PassengerDetails{
			Name:   "Asha Rao",
			Email:  "asha@example.com",
			Phone:  "9876543210",
			Age:    29,
			Gender: model.GenderFemale,
		},
	}
}

func selectionWith(seats ...string) *seat.Selection {
	sel := seat.NewSelection(nil)
	for _, id := range seats {
		sel.Toggle(id)
	}
	return sel
}

func TestSubmitConfirmed(t *testing.T) {
	api := new(MockAPI)
	var published []queue.TicketIssuedEvent
	sub := &Submitter{
		API:           api,
		PaymentMethod: "STRIPE",
		GatewayTag:    "stripe",
		PublishEvent: func(ctx context.Context, ev queue.TicketIssuedEvent) error {
			published = append(published, ev)
			return nil
		},
	}
	sel := selectionWith("1A", "1B")

	api.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req model.BookingRequest) bool {
		return req.UserID == "42" &&
			req.NumberOfSeats == 2 &&
			req.TotalFareCents == 100000 &&
			req.PaymentStatus == model.PaymentPending &&
			req.PaymentMethod == "STRIPE" &&
			req.BoardingPoint == "Dadar"
	})).Return(model.BookingCreated{ID: "bk-9"}, nil)
	api.On("ProcessPayment", mock.Anything, mock.MatchedBy(func(req model.PaymentRequest) bool {
		return req.BookingID == "bk-9" &&
			req.AmountCents == 100000 &&
			req.PaymentMethod == "stripe"
	})).Return(model.PaymentResult{Success: true, TransactionID: "tx-1"}, nil)

	outcome, err := sub.Submit(context.Background(), testRequest(), sel)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, outcome.Status)
	assert.Equal(t, "bk-9", outcome.BookingID)
	assert.Equal(t, int64(100000), outcome.FareCents)

	require.Len(t, published, 1)
	assert.Equal(t, "bk-9", published[0].BookingID)
	assert.Equal(t, []string{"1A", "1B"}, published[0].SeatNumbers)

	// Terminal outcome clears the session's selection.
	assert.Equal(t, 0, sel.Count())
	api.AssertExpectations(t)
}

func TestSubmitPaymentDeclined(t *testing.T) {
	api := new(MockAPI)
	sub := &Submitter{
		API:           api,
		PaymentMethod: "STRIPE",
		GatewayTag:    "stripe",
		PublishEvent: func(ctx context.Context, ev queue.TicketIssuedEvent) error {
			t.Fatal("no event should be published for a declined payment")
			return nil
		},
	}
	sel := selectionWith("1A")

	api.On("CreateBooking", mock.Anything, mock.Anything).
		Return(model.BookingCreated{ID: "bk-10"}, nil)
	api.On("ProcessPayment", mock.Anything, mock.Anything).
		Return(model.PaymentResult{Success: false, Message: "card declined"}, nil)

	outcome, err := sub.Submit(context.Background(), testRequest(), sel)
	require.NoError(t, err)
	assert.Equal(t, StatusPaymentDeclined, outcome.Status)
	assert.Empty(t, outcome.BookingID, "a declined booking is not surfaced as confirmed")
	assert.Equal(t, 0, sel.Count())
	api.AssertExpectations(t)
}

func TestSubmitCreateFailureSkipsPayment(t *testing.T) {
	api := new(MockAPI)
	sub := &Submitter{API: api, PaymentMethod: "STRIPE", GatewayTag: "stripe"}
	sel := selectionWith("1A")

	api.On("CreateBooking", mock.Anything, mock.Anything).
		Return(model.BookingCreated{}, errors.New("connection refused"))

	outcome, err := sub.Submit(context.Background(), testRequest(), sel)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmissionFailed, outcome.Status)
	assert.Error(t, outcome.Err)
	assert.Equal(t, 0, sel.Count())
	api.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
}

func TestSubmitPaymentTransportFailure(t *testing.T) {
	api := new(MockAPI)
	sub := &Submitter{API: api, PaymentMethod: "STRIPE", GatewayTag: "stripe"}
	sel := selectionWith("1A")

	api.On("CreateBooking", mock.Anything, mock.Anything).
		Return(model.BookingCreated{ID: "bk-11"}, nil)
	api.On("ProcessPayment", mock.Anything, mock.Anything).
		Return(model.PaymentResult{}, errors.New("timeout"))

	outcome, err := sub.Submit(context.Background(), testRequest(), sel)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmissionFailed, outcome.Status)
	assert.Empty(t, outcome.BookingID)
	api.AssertExpectations(t)
}

func TestSubmitSendsGatewayTagVerbatim(t *testing.T) {
	api := new(MockAPI)
	// The booking tag and the processor tag are configured
	// independently; neither is derived from the other's casing.
	sub := &Submitter{API: api, PaymentMethod: "RAZORPAY", GatewayTag: "razorpay-v1"}
	sel := selectionWith("1A")

	api.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req model.BookingRequest) bool {
		return req.PaymentMethod == "RAZORPAY"
	})).Return(model.BookingCreated{ID: "bk-12"}, nil)
	api.On("ProcessPayment", mock.Anything, mock.MatchedBy(func(req model.PaymentRequest) bool {
		return req.PaymentMethod == "razorpay-v1"
	})).Return(model.PaymentResult{Success: true}, nil)

	outcome, err := sub.Submit(context.Background(), testRequest(), sel)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, outcome.Status)
	api.AssertExpectations(t)
}

func TestSubmitValidationFailuresMakeNoCalls(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
		sel    *seat.Selection
		field  string
	}{
		{"no seats", func(r *Request) {}, seat.NewSelection(nil), "seats"},
		{"missing name", func(r *Request) { r.Passenger.Name = "  " }, selectionWith("1A"), "name"},
		{"missing email", func(r *Request) { r.Passenger.Email = "" }, selectionWith("1A"), "email"},
		{"missing phone", func(r *Request) { r.Passenger.Phone = "" }, selectionWith("1A"), "phone"},
		{"bad gender", func(r *Request) { r.Passenger.Gender = "Unknown" }, selectionWith("1A"), "gender"},
		{"bad date", func(r *Request) { r.JourneyDate = "14-09-2026" }, selectionWith("1A"), "journeyDate"},
		{"no boarding points", func(r *Request) { r.Route.BoardingPoints = nil }, selectionWith("1A"), "route"},
		{"no dropping points", func(r *Request) { r.Route.DroppingPoints = nil }, selectionWith("1A"), "route"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := new(MockAPI)
			sub := &Submitter{API: api, PaymentMethod: "STRIPE", GatewayTag: "stripe"}
			req := testRequest()
			tc.mutate(&req)

			_, err := sub.Submit(context.Background(), req, tc.sel)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
			api.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
		})
	}
}
