//go:build unit

package geo_test

import (
	"testing"

	"parkspot/internal/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Zero(t, geo.DistanceKm(12.9716, 77.5946, 12.9716, 77.5946))
	})

	t.Run("bangalore to chennai", func(t *testing.T) {
		// MG Road, Bengaluru to Chennai Central; straight-line, roughly 290km.
		d := geo.DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
		assert.InDelta(t, 290.0, d, 5.0)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := geo.DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
		ba := geo.DistanceKm(13.0827, 80.2707, 12.9716, 77.5946)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("short hop stays sub kilometre", func(t *testing.T) {
		d := geo.DistanceKm(12.9716, 77.5946, 12.9720, 77.5950)
		assert.Less(t, d, 0.1)
		assert.Greater(t, d, 0.0)
	})
}
