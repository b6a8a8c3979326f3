package eventmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInstrumentComponents(t *testing.T) {
	t.Run("round trip through the generator", func(t *testing.T) {
		selection := ContractSelection{
			Coin:        CoinBTC,
			ExpiryDate:  time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC),
			StrikePrice: 50000,
			OptionType:  OptionTypeCall,
		}

		components, err := NewInstrumentComponents(NewInstrumentID(selection))
		assert.Nil(t, err)
		assert.Equal(t, CoinBTC, components.Coin)
		assert.Equal(t, selection.ExpiryDate, components.Expiry)
		assert.Equal(t, 50000, components.Strike)
		assert.Equal(t, OptionTypeCall, components.OptionType)
	})

	t.Run("single digit day", func(t *testing.T) {
		components, err := NewInstrumentComponents("ETH-3JAN25-2500-P")
		assert.Nil(t, err)
		assert.Equal(t, CoinETH, components.Coin)
		assert.Equal(t, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), components.Expiry)
		assert.Equal(t, 2500, components.Strike)
		assert.Equal(t, OptionTypePut, components.OptionType)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		malformed := []InstrumentID{
			"",
			"BTC-27DEC24-50000",
			"BTC-27DEC24-50000-C-extra",
			"DOGE-27DEC24-50000-C",
			"BTC-27XYZ24-50000-C",
			"BTC-DEC24-50000-C",
			"BTC-27DEC2024-50000-C",
			"BTC-27DEC24-fifty-C",
			"BTC-27DEC24-50000-X",
		}

		for _, id := range malformed {
			_, err := NewInstrumentComponents(id)
			assert.NotNil(t, err, "expected %s to be rejected", id)
		}
	})
}
