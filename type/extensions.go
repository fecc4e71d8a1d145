package typex

import (
	"fmt"
	"strings"
)

// NullableBool is a bool that remembers whether it was ever set, so a later configuration
// layer only overrides an earlier one when it actually says something.
type NullableBool struct {
	Value *bool
}

// Set accepts flag and environment spellings. Empty, "0", "false", "no" and "off" are false;
// anything else is true, so GGHTTP=1 and GGHTTP=yes both enable the option.
func (nb *NullableBool) Set(s string) error {
	var v bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		v = false
	default:
		v = true
	}
	nb.Value = &v
	return nil
}

func (nb *NullableBool) String() string {
	if nb.Value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *nb.Value)
}

func (nb *NullableBool) Val(defaultValue bool) bool {
	if nb.Value == nil {
		return defaultValue
	}
	return *nb.Value
}

func (nb *NullableBool) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v bool
	if err := unmarshal(&v); err != nil {
		return err
	}
	nb.Value = &v
	return nil
}
