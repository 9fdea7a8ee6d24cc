package usecases

import (
	"regexp"
	"strings"
)

// nonAlnumRun matches a maximal run of characters outside [a-z0-9].
var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns free-text into a branch-name slug: lowercase, with every
// run of non-alphanumeric characters collapsed to a single hyphen and no
// leading or trailing hyphen. The result may be empty if the input holds
// no alphanumeric characters; that is a valid value, not an error.
//
// Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
