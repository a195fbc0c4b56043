package seat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalFare(t *testing.T) {
	assert.Equal(t, int64(100000), TotalFare(50000, 2))
	assert.Equal(t, int64(50000), TotalFare(50000, 1))
	assert.Equal(t, int64(0), TotalFare(50000, 0))
	assert.Equal(t, int64(0), TotalFare(50000, -3))
	assert.Equal(t, int64(0), TotalFare(0, 5))
}

func TestTotalFareScalesLinearly(t *testing.T) {
	const base = int64(123450)
	for n := 1; n <= 6; n++ {
		assert.Equal(t, TotalFare(base, n-1)+base, TotalFare(base, n))
	}
}
