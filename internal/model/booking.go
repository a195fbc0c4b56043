package model

// Gender is the passenger gender enum accepted by the booking backend.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the accepted enum values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PaymentStatus tracks the payment lifecycle of a booking.  A booking
// is created PENDING; a successful payment moves it to PAID and the
// backend confirms it, while an explicit decline leaves it FAILED but
// the booking record itself remains.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// PassengerDetails carries the contact block submitted with a booking.
// Name, Email and Phone are required; Age and Gender are optional
// extras the backend stores verbatim.
type PassengerDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Age    int    `json:"age,omitempty"`
	Gender Gender `json:"gender,omitempty"`
}

// BookingRequest is the booking-creation payload, field for field in
// the order the backend expects it.  TotalFareCents must equal the
// route's base fare multiplied by the seat count; the backend does not
// recompute it.
type BookingRequest struct {
	UserID           string           `json:"userId"`
	BusID            string           `json:"busId"`
	RouteID          string           `json:"routeId"`
	PassengerDetails PassengerDetails `json:"passengerDetails"`
	JourneyDate      string           `json:"journeyDate"`
	FromCity         string           `json:"fromCity"`
	ToCity           string           `json:"toCity"`
	BoardingPoint    string           `json:"boardingPoint"`
	DroppingPoint    string           `json:"droppingPoint"`
	SeatNumbers      []string         `json:"seatNumbers"`
	NumberOfSeats    int              `json:"numberOfSeats"`
	TotalFareCents   int64            `json:"totalFare"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
	PaymentMethod    string           `json:"paymentMethod"`
}

// BookingCreated is the backend's reply to a successful booking
// creation.  Only the identifier matters to the submitter; the full
// record is fetched separately by the confirmation view.
type BookingCreated struct {
	ID string `json:"id"`
}

// Booking is the full booking record as returned by the backend for
// confirmation and history views.
type Booking struct {
	ID               string           `json:"id"`
	BookingNumber    string           `json:"bookingNumber"`
	UserID           string           `json:"userId"`
	BusID            string           `json:"busId"`
	RouteID          string           `json:"routeId"`
	PassengerDetails PassengerDetails `json:"passengerDetails"`
	JourneyDate      string           `json:"journeyDate"`
	FromCity         string           `json:"fromCity"`
	ToCity           string           `json:"toCity"`
	BoardingPoint    string           `json:"boardingPoint"`
	DroppingPoint    string           `json:"droppingPoint"`
	SeatNumbers      []string         `json:"seatNumbers"`
	NumberOfSeats    int              `json:"numberOfSeats"`
	TotalFareCents   int64            `json:"totalFare"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
	Status           string           `json:"status"`
	BookingDate      string           `json:"bookingDate"`
}
