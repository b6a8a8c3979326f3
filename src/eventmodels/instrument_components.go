package eventmodels

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InstrumentComponents holds the parsed contract details.
type InstrumentComponents struct {
	Coin       Coin
	Expiry     time.Time
	Strike     int
	OptionType OptionType
	ID         InstrumentID
}

var monthsByAbbrev = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

func NewInstrumentComponents(id InstrumentID) (*InstrumentComponents, error) {
	parts := strings.Split(string(id), "-")
	if len(parts) != 4 {
		return nil, fmt.Errorf("NewInstrumentComponents: expected 4 segments in instrument id, found %d: %s", len(parts), id)
	}

	coin := Coin(parts[0])
	if err := coin.Validate(); err != nil {
		return nil, fmt.Errorf("NewInstrumentComponents: invalid coin segment: %w", err)
	}

	// The expiry segment is {day}{MON}{YY}: 6 chars for a single-digit day, 7 otherwise
	expirySegment := parts[1]
	if len(expirySegment) != 6 && len(expirySegment) != 7 {
		return nil, fmt.Errorf("NewInstrumentComponents: invalid expiry segment: %s", expirySegment)
	}

	dayStr := expirySegment[:len(expirySegment)-5]
	monthStr := expirySegment[len(expirySegment)-5 : len(expirySegment)-2]
	yearStr := expirySegment[len(expirySegment)-2:]

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return nil, fmt.Errorf("NewInstrumentComponents: invalid expiry day %s: %w", dayStr, err)
	}

	month, found := monthsByAbbrev[monthStr]
	if !found {
		return nil, fmt.Errorf("NewInstrumentComponents: invalid expiry month: %s", monthStr)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, fmt.Errorf("NewInstrumentComponents: invalid expiry year %s: %w", yearStr, err)
	}

	strike, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("NewInstrumentComponents: invalid strike segment %s: %w", parts[2], err)
	}

	var optionType OptionType
	switch parts[3] {
	case "C":
		optionType = OptionTypeCall
	case "P":
		optionType = OptionTypePut
	default:
		return nil, fmt.Errorf("NewInstrumentComponents: invalid option type segment: %s", parts[3])
	}

	return &InstrumentComponents{
		Coin:       coin,
		Expiry:     time.Date(2000+year, month, day, 0, 0, 0, 0, time.UTC),
		Strike:     strike,
		OptionType: optionType,
		ID:         id,
	}, nil
}
