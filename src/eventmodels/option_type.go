package eventmodels

import (
	"fmt"
	"strings"
)

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

func (o OptionType) Validate() error {
	if o != OptionTypeCall && o != OptionTypePut {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

// Letter returns the uppercased first character of the raw value. Any
// non-empty string produces a letter, so values outside the call/put pair
// still derive a deterministic identifier suffix.
func (o OptionType) Letter() string {
	if len(o) == 0 {
		return ""
	}

	return strings.ToUpper(string(o)[:1])
}
