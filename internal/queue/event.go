// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published when a booking has been paid and
// confirmed.  It carries enough information for downstream consumers
// (ticket ledger, notification senders) to act without calling the
// backend again.
type TicketIssuedEvent struct {
	BookingID      string   `json:"booking_id"`
	UserID         string   `json:"user_id"`
	BusName        string   `json:"bus_name"`
	FromCity       string   `json:"from_city"`
	ToCity         string   `json:"to_city"`
	JourneyDate    string   `json:"journey_date"`
	SeatNumbers    []string `json:"seats"`
	TotalFareCents int64    `json:"total_fare_cents"`
	Email          string   `json:"email"`
	IssuedAt       string   `json:"issued_at"`
}
