package eventmodels

import (
	"fmt"
	"time"
)

// ContractSelection holds the user-chosen contract parameters. It is a value
// object: created once from the input surface and consumed by NewInstrumentID.
type ContractSelection struct {
	Coin        Coin       `json:"coin"`
	ExpiryDate  time.Time  `json:"expiry_date"`
	StrikePrice float64    `json:"strike_price"`
	OptionType  OptionType `json:"option_type"`
}

func (s ContractSelection) Validate() error {
	if err := s.Coin.Validate(); err != nil {
		return fmt.Errorf("ContractSelection: Validate: %w", err)
	}

	if s.ExpiryDate.IsZero() {
		return fmt.Errorf("ContractSelection: Validate: expiry date not set")
	}

	if s.StrikePrice < 0 {
		return fmt.Errorf("ContractSelection: Validate: strike price must be non-negative, got %v", s.StrikePrice)
	}

	if err := s.OptionType.Validate(); err != nil {
		return fmt.Errorf("ContractSelection: Validate: %w", err)
	}

	return nil
}
