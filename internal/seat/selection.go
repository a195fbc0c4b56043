package seat

// Status classifies a single seat from the point of view of one
// booking session.
type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusSelected  Status = "SELECTED"
	StatusAvailable Status = "AVAILABLE"
)

// Selection tracks one session's in-progress seat choice against the
// set of seats already committed for the same bus/route/journey-date.
// The booked set is write-once: it is supplied at construction and
// never mutated afterwards.  The selected sequence preserves the order
// in which the user picked seats.
//
// The invariant selected ∩ booked = ∅ holds at all times.  It is
// enforced entirely by Toggle refusing to add a booked seat; there is
// no separate validation pass.
type Selection struct {
	booked   map[string]struct{}
	selected []string
}

// NewSelection builds a Selection over the given booked seat
// identifiers.  Duplicates in booked are collapsed.
func NewSelection(booked []string) *Selection {
	set := make(map[string]struct{}, len(booked))
	for _, id := range booked {
		set[id] = struct{}{}
	}
	return &Selection{booked: set}
}

// Toggle flips the selection state of one seat.  A booked seat is never
// selectable, so toggling it is a no-op.  Otherwise a selected seat is
// removed and an unselected seat is appended, making Toggle its own
// inverse: two toggles of the same seat cancel out.
func (s *Selection) Toggle(id string) {
	if _, ok := s.booked[id]; ok {
		return
	}
	for i, sel := range s.selected {
		if sel == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, id)
}

// Classify returns the status of a seat with booked taking precedence
// over selected.  It never reports a booked seat as selected.
func (s *Selection) Classify(id string) Status {
	if _, ok := s.booked[id]; ok {
		return StatusBooked
	}
	for _, sel := range s.selected {
		if sel == id {
			return StatusSelected
		}
	}
	return StatusAvailable
}

// Selected returns a copy of the chosen seats in pick order.
func (s *Selection) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Count returns the number of currently selected seats.
func (s *Selection) Count() int { return len(s.selected) }

// Clear empties the selection.  It is called after a terminal booking
// outcome so a finished session cannot leak seats into the next one.
func (s *Selection) Clear() { s.selected = s.selected[:0] }
