package validator

import "strconv"

// ParseQuantity interprets a raw quantity field. Empty, unparsable, or
// zero input yields 1, matching how the cart view has always treated a
// blanked-out box. Negative values pass through so the remove-on-nonpositive
// rule in the cart repository applies.
func ParseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n == 0 {
		return 1
	}
	return n
}
