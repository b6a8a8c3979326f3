package eventmodels

import (
	"fmt"
	"time"
)

// ViewState carries the dashboard state across re-renders. The server keeps
// no session storage: the remembered contract name and form values round-trip
// through the page's query string, and the caller threads this struct into
// every render.
type ViewState struct {
	ContractName InstrumentID `schema:"contract_name"`
	Coin         Coin         `schema:"coin"`
	ExpiryDate   string       `schema:"expiry_date"`
	StrikePrice  float64      `schema:"strike_price"`
	OptionType   OptionType   `schema:"option_type"`
	StartDate    string       `schema:"start_date"`
	EndDate      string       `schema:"end_date"`
	Resolution   Resolution   `schema:"resolution"`
}

// ApplyDefaults fills unset fields the way the input surface would: expiry
// defaults to today, the window start to thirty days before expiry, the
// window end to today. The window never starts after today.
func (s *ViewState) ApplyDefaults(now time.Time) {
	today := now.Format("2006-01-02")

	if s.Coin == "" {
		s.Coin = CoinBTC
	}

	if s.OptionType == "" {
		s.OptionType = OptionTypeCall
	}

	if s.ExpiryDate == "" {
		s.ExpiryDate = today
	}

	if s.Resolution == "" {
		s.Resolution = ResolutionDaily
	}

	if s.StartDate == "" {
		start := now
		if expiry, err := time.Parse("2006-01-02", s.ExpiryDate); err == nil {
			start = expiry.AddDate(0, 0, -30)
		}

		if start.After(now) {
			start = now
		}

		s.StartDate = start.Format("2006-01-02")
	}

	if s.EndDate == "" {
		s.EndDate = today
	}
}

// ToContractSelection converts the remembered form fields into a contract
// selection ready for name generation.
func (s *ViewState) ToContractSelection() (ContractSelection, error) {
	expiry, err := time.Parse("2006-01-02", s.ExpiryDate)
	if err != nil {
		return ContractSelection{}, fmt.Errorf("ToContractSelection: failed to parse expiry date: %w", err)
	}

	return ContractSelection{
		Coin:        s.Coin,
		ExpiryDate:  expiry,
		StrikePrice: s.StrikePrice,
		OptionType:  s.OptionType,
	}, nil
}
