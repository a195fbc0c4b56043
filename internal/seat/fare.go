package seat

// TotalFare computes the fare for a selection: base fare times seat
// count.  Fares are integer minor currency units (paise) end to end, so
// repeated multiplication cannot drift the way float fares do.  A
// non-positive seat count yields zero.
func TotalFare(baseFareCents int64, seats int) int64 {
	if seats <= 0 {
		return 0
	}
	return baseFareCents * int64(seats)
}
