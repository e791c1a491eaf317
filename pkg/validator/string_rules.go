package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// newRule builds a Rule whose translation values always carry the field name.
func newRule(field, key, msg string, check func() bool, values map[string]any) Rule {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// Required rejects values that are blank after trimming.
func Required(field, value string) Rule {
	return newRule(field, "validation.required", "field is required",
		func() bool { return strings.TrimSpace(value) != "" }, nil)
}

// MinLen and MaxLen count runes, so "Íñigo" is five characters long.
func MinLen(field, value string, min int) Rule {
	return newRule(field, "validation.min_length", fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return utf8.RuneCountInString(value) >= min },
		map[string]any{"min": min})
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max },
		map[string]any{"max": max})
}

// OneOfString accepts only exact matches from options.
func OneOfString(field, value string, options ...string) Rule {
	list := strings.Join(options, ", ")
	return newRule(field, "validation.one_of", "must be one of: "+list,
		func() bool { return slices.Contains(options, value) },
		map[string]any{"options": list})
}

// Aliases kept for call sites that spell out the value type.
var (
	RequiredString = Required
	MinLenString   = MinLen
	MaxLenString   = MaxLen
)
