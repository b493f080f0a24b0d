package models

import (
	"fmt"
	"strings"
	"unicode"
)

// ItemCode is a value object for the short human-assigned identifier of an
// item. Codes are 1–32 characters, contain no whitespace or control
// characters, and are unique across the whole tree when compared
// case-insensitively. A code never changes once the item exists.
type ItemCode string

const (
	minItemCodeLength = 1
	maxItemCodeLength = 32
)

// NewItemCode constructs a valid ItemCode or returns an error describing the
// violated constraint.
func NewItemCode(s string) (ItemCode, error) {
	if len(s) < minItemCodeLength {
		return "", fmt.Errorf("item code must not be empty")
	}
	if len(s) > maxItemCodeLength {
		return "", fmt.Errorf("item code must not exceed %d characters", maxItemCodeLength)
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return "", fmt.Errorf("item code must not contain whitespace")
		}
		if unicode.IsControl(r) {
			return "", fmt.Errorf("item code must not contain control characters")
		}
	}
	return ItemCode(s), nil
}

// String returns the code as entered by the user.
func (c ItemCode) String() string {
	return string(c)
}

// Norm returns the lowercased form used for uniqueness checks and lookups.
func (c ItemCode) Norm() string {
	return strings.ToLower(string(c))
}

// Equal reports whether two codes identify the same item. Comparison is
// case-insensitive, matching the tree-wide uniqueness rule.
func (c ItemCode) Equal(other ItemCode) bool {
	return c.Norm() == other.Norm()
}
