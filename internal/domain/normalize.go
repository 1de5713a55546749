package domain

import "strings"

// NormalizeText trims leading/trailing whitespace and collapses internal
// whitespace runs. Applied to user-entered names and card titles.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
