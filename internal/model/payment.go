package model

// PaymentRequest is the payload for the payment-processing call.  It
// references the booking created in step one of the submit protocol.
// Amount is in minor currency units and must match the booking's total
// fare.
type PaymentRequest struct {
	BookingID     string `json:"bookingId"`
	AmountCents   int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Email         string `json:"email"`
}

// PaymentResult is the backend's payment outcome.  Success is explicit:
// a transport-level error is NOT a decline, and absence of an error
// does not imply success.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
}
