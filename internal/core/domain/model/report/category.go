package report

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Category is the ABC class of a product inside its warehouse.
type Category int

const (
	UnknownCategory Category = iota
	CategoryA
	CategoryB
	CategoryC
)

const (
	// CategoryAThreshold is the highest accumulated percent still classed A.
	CategoryAThreshold = 70.0
	// CategoryBThreshold is the highest accumulated percent still classed B.
	CategoryBThreshold = 90.0
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "Unknown",
		CategoryA:       "A",
		CategoryB:       "B",
		CategoryC:       "C",
	}
}

// CategoryFor classifies an accumulated percent: <= 70 is A, <= 90 is B, anything above is C.
func CategoryFor(accumulated float64) Category {
	switch {
	case accumulated <= CategoryAThreshold:
		return CategoryA
	case accumulated <= CategoryBThreshold:
		return CategoryB
	default:
		return CategoryC
	}
}

// ParseCategory is the inverse of String for A, B and C.
func ParseCategory(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if c != UnknownCategory && str == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not A, B or C", s))
}

func (c Category) Validate() error {
	if c < CategoryA || c > CategoryC {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// MarshalText renders the category letter, so JSON carries "A", "B" or "C".
func (c Category) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
