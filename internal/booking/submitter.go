// Package booking implements the two-phase booking submission: create
// the booking against the external backend, then process payment for
// it.  No idempotency key is sent with the creation call, so a user
// retrying after a transport failure can leave duplicate PENDING
// bookings upstream; that is a known limitation of the protocol and is
// deliberately not remediated here.
package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
	"github.com/iliyamo/bus-booking-gateway/internal/queue"
	"github.com/iliyamo/bus-booking-gateway/internal/seat"
)

// API is the slice of the backend the submitter depends on.
type API interface {
	CreateBooking(ctx context.Context, req model.BookingRequest) (model.BookingCreated, error)
	ProcessPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentResult, error)
}

// EventPublisher publishes a ticket event after a confirmed booking.
// Publish failures are logged and ignored; they never fail the booking.
type EventPublisher func(ctx context.Context, ev queue.TicketIssuedEvent) error

// Status is the terminal outcome of one submission.
type Status string

const (
	// StatusConfirmed: booking created and payment succeeded.
	StatusConfirmed Status = "CONFIRMED"
	// StatusPaymentDeclined: payment reported an explicit failure; the
	// booking record remains PENDING upstream and is not rolled back.
	StatusPaymentDeclined Status = "PAYMENT_DECLINED"
	// StatusSubmissionFailed: a transport-level failure on either call.
	// The caller must re-initiate from scratch; nothing is retried.
	StatusSubmissionFailed Status = "SUBMISSION_FAILED"
)

// Outcome is the result of a submission that got past validation.
// BookingID is set only when the booking was confirmed.  Err carries
// the transport error for StatusSubmissionFailed.
type Outcome struct {
	Status    Status
	BookingID string
	FareCents int64
	Err       error
}

// Request is the finalized booking command: everything the submit
// protocol needs, validated wholesale before the first network call.
// Seats come from the session's Selection, not from here.
type Request struct {
	UserID      string
	Bus         model.Bus
	Route       model.Route
	JourneyDate string // ISO date, e.g. "2026-09-14"
	Passenger   model.PassengerDetails
}

// Submitter orchestrates booking creation and payment.  One Submitter
// serves all sessions; per-session state lives in the seat.Selection
// passed to Submit.
type Submitter struct {
	API           API
	PaymentMethod string         // tag stored on the booking record, e.g. "STRIPE"
	GatewayTag    string         // tag the payment processor expects, e.g. "stripe"
	PublishEvent  EventPublisher // optional; nil disables events
}

// ValidatePassenger checks the contact fields every booking needs.  It
// is pure and needs no backend data, so callers run it before making
// any network call.
func ValidatePassenger(p model.PassengerDetails) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Msg: "passenger name is required"}
	}
	if strings.TrimSpace(p.Email) == "" {
		return &ValidationError{Field: "email", Msg: "passenger email is required"}
	}
	if strings.TrimSpace(p.Phone) == "" {
		return &ValidationError{Field: "phone", Msg: "passenger phone is required"}
	}
	if p.Gender != "" && !p.Gender.Valid() {
		return &ValidationError{Field: "gender", Msg: "gender must be Male, Female or Other"}
	}
	return nil
}

// ValidateJourneyDate checks the ISO date format.  Like
// ValidatePassenger it is pure and runs before any network call.
func ValidateJourneyDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &ValidationError{Field: "journeyDate", Msg: "journey date must be YYYY-MM-DD"}
	}
	return nil
}

// Validate checks the full set of submission preconditions: the pure
// checks above plus the seat count and the route shape (boarding and
// dropping points), which only exist once the route has been loaded.
// It performs no I/O and returns a *ValidationError on the first
// violation.
func (s *Submitter) Validate(req Request, sel *seat.Selection) error {
	if sel == nil || sel.Count() < 1 {
		return &ValidationError{Field: "seats", Msg: "select at least one seat"}
	}
	if err := ValidatePassenger(req.Passenger); err != nil {
		return err
	}
	if err := ValidateJourneyDate(req.JourneyDate); err != nil {
		return err
	}
	if len(req.Route.BoardingPoints) == 0 {
		return &ValidationError{Field: "route", Msg: "route has no boarding points"}
	}
	if len(req.Route.DroppingPoints) == 0 {
		return &ValidationError{Field: "route", Msg: "route has no dropping points"}
	}
	return nil
}

// Submit runs the two-phase protocol.  A non-nil error is always a
// *ValidationError raised before any network call.  Once validation
// passes, every path ends in a terminal Outcome and the selection is
// cleared, so a finished session cannot be resubmitted by accident.
//
// The payment step runs on a context detached from the caller's: once
// the booking-creation call has been dispatched there is no
// cancellation path, and a client that disconnects between the two
// steps must not strand a created booking without a payment attempt.
func (s *Submitter) Submit(ctx context.Context, req Request, sel *seat.Selection) (Outcome, error) {
	if err := s.Validate(req, sel); err != nil {
		return Outcome{}, err
	}

	seats := sel.Selected()
	fare := seat.TotalFare(req.Route.BaseFareCents, len(seats))
	defer sel.Clear()

	created, err := s.API.CreateBooking(ctx, model.BookingRequest{
		UserID:           req.UserID,
		BusID:            req.Bus.ID,
		RouteID:          req.Route.ID,
		PassengerDetails: req.Passenger,
		JourneyDate:      req.JourneyDate,
		FromCity:         req.Route.FromCity,
		ToCity:           req.Route.ToCity,
		BoardingPoint:    req.Route.BoardingPoints[0],
		DroppingPoint:    req.Route.DroppingPoints[0],
		SeatNumbers:      seats,
		NumberOfSeats:    len(seats),
		TotalFareCents:   fare,
		PaymentStatus:    model.PaymentPending,
		PaymentMethod:    s.PaymentMethod,
	})
	if err != nil {
		return Outcome{Status: StatusSubmissionFailed, FareCents: fare, Err: err}, nil
	}

	payCtx := context.WithoutCancel(ctx)
	result, err := s.API.ProcessPayment(payCtx, model.PaymentRequest{
		BookingID:     created.ID,
		AmountCents:   fare,
		PaymentMethod: s.GatewayTag,
		Email:         req.Passenger.Email,
	})
	if err != nil {
		return Outcome{Status: StatusSubmissionFailed, FareCents: fare, Err: err}, nil
	}
	if !result.Success {
		return Outcome{Status: StatusPaymentDeclined, FareCents: fare}, nil
	}

	if s.PublishEvent != nil {
		ev := queue.TicketIssuedEvent{
			BookingID:      created.ID,
			UserID:         req.UserID,
			BusName:        req.Bus.BusName,
			FromCity:       req.Route.FromCity,
			ToCity:         req.Route.ToCity,
			JourneyDate:    req.JourneyDate,
			SeatNumbers:    seats,
			TotalFareCents: fare,
			Email:          req.Passenger.Email,
			IssuedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.PublishEvent(payCtx, ev); err != nil {
			log.Printf("booking: publish ticket event failed for %s: %v", created.ID, err)
		}
	}

	return Outcome{Status: StatusConfirmed, BookingID: created.ID, FareCents: fare}, nil
}
