package model

// Route mirrors a route record served by the inventory backend.  A
// route ties one bus to an origin/destination pair with a per-seat base
// fare.  Fares are integer minor currency units (paise); the backend
// serializes them as plain integers so no floating point is involved.
//
// Fields:
//  ID             – backend identifier of the route.
//  BusID          – bus operating this route.
//  FromCity       – origin city.
//  ToCity         – destination city.
//  DepartureTime  – departure clock time, "15:04" form.
//  ArrivalTime    – arrival clock time.
//  Duration       – human readable duration (e.g. "6h 30m").
//  BaseFareCents  – per-seat price before seat-count multiplication.
//  BoardingPoints – pickup locations; must be non-empty for a bookable route.
//  DroppingPoints – drop locations; must be non-empty for a bookable route.
//  IsActive       – whether the route is bookable.
type Route struct {
	ID             string   `json:"id"`
	BusID          string   `json:"busId"`
	FromCity       string   `json:"fromCity"`
	ToCity         string   `json:"toCity"`
	DepartureTime  string   `json:"departureTime"`
	ArrivalTime    string   `json:"arrivalTime"`
	Duration       string   `json:"duration"`
	BaseFareCents  int64    `json:"baseFare"`
	BoardingPoints []string `json:"boardingPoints"`
	DroppingPoints []string `json:"droppingPoints"`
	IsActive       bool     `json:"isActive"`
}
