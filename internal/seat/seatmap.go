// Package seat implements the seat-selection core: generating the seat
// grid of a bus, overlaying booked and selected status, and computing
// fares.  Everything in this package is pure and session-local; the
// booked seat set is loaded once from the backend at session start and
// never refreshed, so staleness across concurrent sessions is possible
// and resolved upstream.
package seat

import "fmt"

// columnLetters is the fixed ordered column alphabet.  A bus uses the
// first SeatsPerRow letters of it.
const columnLetters = "ABCDEF"

// MaxSeatsPerRow is the widest supported row, bounded by the column
// alphabet.
const MaxSeatsPerRow = len(columnLetters)

// ConfigurationError reports an invalid seat-grid configuration.  It is
// surfaced to callers before any network activity happens.
type ConfigurationError struct {
	Rows        int
	SeatsPerRow int
	Reason      string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid seat grid %dx%d: %s", e.Rows, e.SeatsPerRow, e.Reason)
}

// Generate returns the full seat universe of a bus in row-major order:
// for every row 1..rows, one identifier per column letter, e.g.
// "1A","1B","2A","2B" for a 2x2 grid.  The result always has exactly
// rows*seatsPerRow unique identifiers.  Generation is deterministic and
// has no side effects.
func Generate(rows, seatsPerRow int) ([]string, error) {
	if rows < 1 {
		return nil, &ConfigurationError{Rows: rows, SeatsPerRow: seatsPerRow, Reason: "rows must be at least 1"}
	}
	if seatsPerRow < 1 {
		return nil, &ConfigurationError{Rows: rows, SeatsPerRow: seatsPerRow, Reason: "seats per row must be at least 1"}
	}
	if seatsPerRow > MaxSeatsPerRow {
		return nil, &ConfigurationError{Rows: rows, SeatsPerRow: seatsPerRow,
			Reason: fmt.Sprintf("seats per row exceeds column alphabet length %d", MaxSeatsPerRow)}
	}
	seats := make([]string, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for col := 0; col < seatsPerRow; col++ {
			seats = append(seats, fmt.Sprintf("%d%c", row, columnLetters[col]))
		}
	}
	return seats, nil
}
