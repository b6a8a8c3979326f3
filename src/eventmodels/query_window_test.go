package eventmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryWindowMillis(t *testing.T) {
	t.Run("whole seconds", func(t *testing.T) {
		window := QueryWindow{StartSec: 1700000000, EndSec: 1700086400, Resolution: ResolutionDaily}

		assert.Equal(t, int64(1700000000000), window.StartMs())
		assert.Equal(t, int64(1700086400000), window.EndMs())
	})

	t.Run("fractional seconds carry into millis", func(t *testing.T) {
		window := QueryWindow{StartSec: 1.5, EndSec: 2.25}

		assert.Equal(t, int64(1500), window.StartMs())
		assert.Equal(t, int64(2250), window.EndMs())
	})

	t.Run("sub-milli fractions truncate toward zero", func(t *testing.T) {
		window := QueryWindow{StartSec: 1700000000.0015, EndSec: 1699999999.9996}

		assert.Equal(t, int64(1700000000001), window.StartMs())
		assert.Equal(t, int64(1699999999999), window.EndMs())
	})
}
