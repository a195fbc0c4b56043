package model

// SeatLayout describes the physical layout of a bus as stored by the
// inventory backend.  Kind is a free-form descriptor such as "2x2" and
// UnavailableSeats lists seat identifiers that physically do not exist
// (removed seats, wheelchair bays).  The layout is informational; the
// seat grid itself is derived from Rows and SeatsPerRow.
type SeatLayout struct {
	Kind             string   `json:"type"`
	UnavailableSeats []string `json:"unavailableSeats"`
}

// Bus mirrors a bus record served by the inventory backend.  Seat
// identifiers for the bus are generated from Rows and SeatsPerRow; the
// backend also stores TotalSeats but does not guarantee that
// TotalSeats == Rows*SeatsPerRow, so consumers must rely on the grid
// dimensions only.
//
// Fields:
//  ID           – backend identifier of the bus.
//  BusName      – display name (e.g. "Volvo Express").
//  OperatorName – operating company.
//  BusType      – category such as "AC Sleeper".
//  TotalSeats   – seat count as recorded by the backend.
//  Rows         – number of seat rows (1-based row numbers).
//  SeatsPerRow  – seats in each row (columns A, B, C, ...).
//  Amenities    – list of amenity labels.
//  ImageURL     – optional promotional image.
//  IsActive     – whether the bus is bookable.
//  SeatLayout   – physical layout descriptor.
type Bus struct {
	ID           string     `json:"id"`
	BusName      string     `json:"busName"`
	OperatorName string     `json:"operatorName"`
	BusType      string     `json:"busType"`
	TotalSeats   int        `json:"totalSeats"`
	Rows         int        `json:"rows"`
	SeatsPerRow  int        `json:"seatsPerRow"`
	Amenities    []string   `json:"amenities"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	IsActive     bool       `json:"isActive"`
	SeatLayout   SeatLayout `json:"seatLayout"`
}
