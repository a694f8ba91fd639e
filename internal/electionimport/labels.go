package electionimport

import (
	"strings"

	"golang.org/x/text/width"
)

// CleanLabel trims surrounding whitespace and folds full-width ASCII
// (digits, parentheses, the ideographic space) to half-width. County exports
// mix both forms, and the station identity tuple has to join on exact strings.
func CleanLabel(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}
