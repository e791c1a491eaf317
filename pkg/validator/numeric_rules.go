package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericString accepts anything ParseNumber accepts.
func NumericString(field, value string) Rule {
	return newRule(field, "validation.numeric", "must be a number", func() bool {
		_, err := ParseNumber(value)
		return err == nil
	}, nil)
}

// ParseNumber parses a user supplied decimal, accepting a comma as the
// decimal separator.
func ParseNumber(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidFormat
	}
	value = strings.Replace(value, ",", ".", 1)
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if n != n || n > 1e15 || n < -1e15 {
		return 0, ErrOutOfRange
	}
	return n, nil
}

// MinNum and MaxNum bound a numeric value inclusively.
func MinNum[T Numeric](field string, value, min T) Rule {
	return newRule(field, "validation.min", fmt.Sprintf("must be at least %v", min),
		func() bool { return value >= min },
		map[string]any{"min": min})
}

func MaxNum[T Numeric](field string, value, max T) Rule {
	return newRule(field, "validation.max", fmt.Sprintf("must be at most %v", max),
		func() bool { return value <= max },
		map[string]any{"max": max})
}

func Min[T Numeric](field string, value, min T) Rule { return MinNum(field, value, min) }

func Max[T Numeric](field string, value, max T) Rule { return MaxNum(field, value, max) }
