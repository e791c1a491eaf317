// Package sanitizer normalizes user supplied text before it is validated and
// delivered.
//
// Helpers are plain string transforms that can be chained with Apply or
// stored with Compose:
//
//	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.SingleLine)
//	name := clean("  <b>Ana</b>\n  María ") // "Ana María"
//
// None of the helpers fails; invalid input is returned as cleaned as it can
// be.
package sanitizer
