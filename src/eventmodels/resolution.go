package eventmodels

import "fmt"

// Resolution is the time granularity code passed to the market-data API:
// daily bars, hourly bars, or fifteen-minute bars.
type Resolution string

const (
	ResolutionDaily         Resolution = "D"
	ResolutionHourly        Resolution = "60"
	ResolutionFifteenMinute Resolution = "15"
)

func (r Resolution) Validate() error {
	if r != ResolutionDaily && r != ResolutionHourly && r != ResolutionFifteenMinute {
		return fmt.Errorf("Resolution: Validate: invalid resolution: %s", r)
	}

	return nil
}

func (r Resolution) Label() string {
	switch r {
	case ResolutionDaily:
		return "Daily"
	case ResolutionHourly:
		return "Hourly"
	case ResolutionFifteenMinute:
		return "15-Minute"
	default:
		return string(r)
	}
}

func NewResolutionFromLabel(label string) (Resolution, error) {
	switch label {
	case "Daily":
		return ResolutionDaily, nil
	case "Hourly":
		return ResolutionHourly, nil
	case "15-Minute":
		return ResolutionFifteenMinute, nil
	default:
		return "", fmt.Errorf("NewResolutionFromLabel: unknown interval label: %s", label)
	}
}

func AllResolutions() []Resolution {
	return []Resolution{ResolutionDaily, ResolutionHourly, ResolutionFifteenMinute}
}
