package enums

import "fmt"

// OptionType distinguishes the two add-on option catalogs.
type OptionType string

const (
	OptionTypeManufacturer OptionType = "manufacturer"
	OptionTypeVanari       OptionType = "vanari"
)

var validOptionTypes = []OptionType{
	OptionTypeManufacturer,
	OptionTypeVanari,
}

// String implements fmt.Stringer.
func (o OptionType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OptionType.
func (o OptionType) IsValid() bool {
	for _, candidate := range validOptionTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOptionType converts raw input into an OptionType.
func ParseOptionType(value string) (OptionType, error) {
	for _, candidate := range validOptionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid option type %q", value)
}
