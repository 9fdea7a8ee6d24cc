// Package domain defines the core business entities and interfaces for branchpad.
package domain

import (
	"regexp"
	"time"
)

// ticketReferencePattern is the canonical shape of an issue key:
// an uppercase project key, a single hyphen, and a decimal issue number.
var ticketReferencePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]+-[0-9]+$`)

// TicketReference is a validated issue key of the form PROJECT-123.
// A reference produced by the resolver always matches the canonical
// pattern exactly: uppercase project key, single hyphen, no surrounding
// whitespace. The zero value represents "no reference".
type TicketReference string

// IsValid reports whether the reference matches the canonical key pattern.
func (r TicketReference) IsValid() bool {
	return ticketReferencePattern.MatchString(string(r))
}

// String returns the reference as a plain string.
func (r TicketReference) String() string {
	return string(r)
}

// BranchDescriptor holds the validated parts of a branch name.
// The rendered name is exactly author/ticket/slug; a descriptor with any
// empty segment must not be used to create a branch.
type BranchDescriptor struct {
	// Author is the whitespace-stripped version-control author identifier.
	Author string

	// Ticket is the resolved issue reference.
	Ticket TicketReference

	// Slug is the lowercase hyphenated rendering of the description.
	Slug string
}

// BranchName renders the descriptor as author/ticket/slug.
func (d BranchDescriptor) BranchName() string {
	return d.Author + "/" + d.Ticket.String() + "/" + d.Slug
}

// BaseBranchMode selects where a new branch is created from.
type BaseBranchMode int

const (
	// FromTrunk checks out the trunk branch and updates it from the
	// remote before branching.
	FromTrunk BaseBranchMode = iota

	// FromCurrent branches directly from whatever is checked out.
	FromCurrent
)

// String returns a human-readable name for the mode.
func (m BaseBranchMode) String() string {
	if m == FromCurrent {
		return "current"
	}
	return "trunk"
}

// CreateBranchInput contains everything the branch creation orchestrator
// needs for a single invocation.
type CreateBranchInput struct {
	// WorkDir is the local checkout the version-control commands run in.
	WorkDir string

	// Author is the configured version-control author identifier.
	// Surrounding whitespace is stripped before use.
	Author string

	// Ticket is the resolved issue reference; empty means no reference
	// was resolved and creation must be rejected.
	Ticket TicketReference

	// Slug is the slugified description; empty blocks creation.
	Slug string

	// Mode selects the base branch.
	Mode BaseBranchMode

	// TrunkBranch is the designated stable branch used by FromTrunk.
	// Empty falls back to DefaultTrunkBranch.
	TrunkBranch string
}

// BranchInfo describes a local branch for listing purposes.
type BranchInfo struct {
	// Name is the short branch name.
	Name string

	// LastCommitDate is the committer date of the branch tip.
	LastCommitDate time.Time

	// LastCommitSubject is the first line of the tip commit message.
	LastCommitSubject string
}

// DefaultTrunkBranch is the trunk branch name used when none is configured.
const DefaultTrunkBranch = "prod"
