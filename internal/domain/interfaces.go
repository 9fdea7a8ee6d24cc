// Package domain defines the core business entities and interfaces for branchpad.
// This package contains no external dependencies and represents the innermost
// layer of the application.
package domain

import (
	"context"
	"errors"
)

// Domain errors for git state inspection.
var (
	// ErrRepositoryNotFound indicates the working directory is not a valid Git repository.
	ErrRepositoryNotFound = errors.New("git repository not found at specified path")

	// ErrDetachedHead indicates HEAD is not on a branch, so no current
	// branch name can be reported.
	ErrDetachedHead = errors.New("HEAD is detached; no current branch")
)

// GitRunner executes the mutating version-control commands used by branch
// creation. Each command runs in the working directory the runner was
// created for and either fully succeeds or fails with a *VcsError carrying
// the command's captured diagnostic output.
type GitRunner interface {
	// Checkout switches the working directory to an existing branch.
	Checkout(ctx context.Context, branch string) error

	// Pull updates the currently checked out branch from its remote.
	Pull(ctx context.Context) error

	// CheckoutNewBranch creates and switches to a new branch.
	CheckoutNewBranch(ctx context.Context, branch string) error
}

// GitInspector answers read-only questions about the working directory.
type GitInspector interface {
	// CurrentBranch returns the short name of the checked out branch.
	// Returns ErrDetachedHead if HEAD is not on a branch.
	CurrentBranch(ctx context.Context) (string, error)

	// ListBranches returns local branches sorted by most recent commit
	// date, newest first.
	ListBranches(ctx context.Context) ([]BranchInfo, error)

	// Close releases any resources held by the inspector.
	Close() error
}

// IssueGateway fetches advisory issue data from the remote tracker.
type IssueGateway interface {
	// FetchSummary performs one authenticated lookup of the issue's
	// summary field. Returns a *RemoteError on any failure, including a
	// 2xx response with a missing or empty summary.
	FetchSummary(ctx context.Context, ref TicketReference) (string, error)
}

// Notifier is the user-facing notification surface.
type Notifier interface {
	// Success shows a transient success notice.
	Success(title, message string)

	// Failure shows a transient failure notice.
	Failure(title, message string)

	// Progress shows a longer-lived "working" indicator.
	Progress(message string)
}

// URLOpener hands a fully formed URL to the OS default handler.
type URLOpener interface {
	Open(url string) error
}
