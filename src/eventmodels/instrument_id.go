package eventmodels

import (
	"fmt"
	"strings"
)

type InstrumentID string

// NewInstrumentID derives the exchange-style identifier from a contract
// selection, e.g. BTC-27DEC24-50000-C. It is a pure formatting function: it
// never rejects its input, and nothing checks that the result names a listed
// instrument. An unlisted identifier simply returns no data downstream.
func NewInstrumentID(selection ContractSelection) InstrumentID {
	// Format the expiry date: day without leading zero, then MONYY
	day := selection.ExpiryDate.Day()
	monthYear := strings.ToUpper(selection.ExpiryDate.Format("Jan06"))

	// Truncate the strike price: fractional strikes silently lose their fraction
	strike := int(selection.StrikePrice)

	ticker := fmt.Sprintf("%s-%d%s-%d-%s",
		selection.Coin, day, monthYear, strike, selection.OptionType.Letter())

	return InstrumentID(ticker)
}

func (id InstrumentID) Description() (string, error) {
	components, err := NewInstrumentComponents(id)
	if err != nil {
		return "", fmt.Errorf("InstrumentID.Description: failed to parse instrument id: %w", err)
	}

	// Format the expiry date
	expiry := components.Expiry.Format("Jan 2 2006")

	// Format the option type
	optionType := "Call"
	if components.OptionType == OptionTypePut {
		optionType = "Put"
	}

	formatted := fmt.Sprintf("%s %s $%d %s", components.Coin, expiry, components.Strike, optionType)

	return formatted, nil
}
