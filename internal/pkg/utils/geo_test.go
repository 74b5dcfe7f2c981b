package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(-12.0664, -75.2049, -12.0664, -75.2049))

	d := HaversineDistance(-12.0664, -75.2049, -12.0600, -75.2000)
	assert.InDelta(t, 0.89, d, 0.05)

	assert.InDelta(t, HaversineDistance(-12.07, -75.21, -12.06, -75.2), HaversineDistance(-12.06, -75.2, -12.07, -75.21), 1e-9)
}
