// Package usecases contains the application business logic.
// This package orchestrates domain entities and interfaces to fulfill use cases.
package usecases

import (
	"regexp"
	"strings"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// Regular expressions for ticket reference resolution.
var (
	// ticketKeyPattern matches an issue key as a whole word inside
	// arbitrary text that has already been uppercased, e.g.
	// "HTTPS://HOST/BROWSE/SYNTH-23559" or "SEE SYNTH-12 PLEASE".
	ticketKeyPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9_]+-[0-9]+\b`)

	// digitsOnlyPattern matches a bare issue number.
	digitsOnlyPattern = regexp.MustCompile(`^[0-9]+$`)
)

// ResolveTicketReference derives an issue reference from the two raw form
// fields. The link field is authoritative: a key extracted from it wins
// over anything derived from the id field. The id field additionally
// supports a bare-number fallback, synthesized against the default
// project key. Returns the reference and whether one was found.
//
// Pure function of its inputs; no side effects.
func ResolveTicketReference(link, id, defaultProjectKey string) (domain.TicketReference, bool) {
	if ref := extractTicketKey(link); ref != "" {
		return ref, true
	}
	if ref := extractTicketKey(id); ref != "" {
		return ref, true
	}

	digits := stripWhitespace(id)
	if digits != "" && digitsOnlyPattern.MatchString(digits) && defaultProjectKey != "" {
		return domain.TicketReference(defaultProjectKey + "-" + digits), true
	}

	return "", false
}

// extractTicketKey uppercases the text and returns the first whole-word
// issue key found, or empty if there is none.
func extractTicketKey(text string) domain.TicketReference {
	match := ticketKeyPattern.FindString(strings.ToUpper(text))
	return domain.TicketReference(match)
}

// stripWhitespace removes all whitespace from the string.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
