// Package git provides adapters for interacting with the local Git working
// directory. Read-only queries go through go-git/v5; mutating commands run
// the git binary so their diagnostic output can be surfaced verbatim.
package git

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// Logger defines the logging interface for the git adapters.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
}

// GoGitInspector implements domain.GitInspector using go-git/v5.
type GoGitInspector struct {
	repo   *git.Repository
	path   string
	logger Logger
}

// NewGoGitInspector opens the repository at the given path.
// Returns domain.ErrRepositoryNotFound if the path is not a valid Git
// repository.
func NewGoGitInspector(path string, log Logger) (*GoGitInspector, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, path)
	}

	return &GoGitInspector{
		repo:   repo,
		path:   path,
		logger: log,
	}, nil
}

// CurrentBranch returns the short name of the branch HEAD points at.
// Returns domain.ErrDetachedHead if HEAD is not on a branch.
func (r *GoGitInspector) CurrentBranch(ctx context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		r.logger.Warn(ctx, "HEAD is detached", map[string]interface{}{
			"head_sha": head.Hash().String(),
			"path":     r.path,
		})
		return "", domain.ErrDetachedHead
	}

	return head.Name().Short(), nil
}

// ListBranches returns local branches sorted by last commit date, newest
// first. Branches whose tip commit cannot be loaded are skipped with a
// warning rather than failing the whole listing.
func (r *GoGitInspector) ListBranches(ctx context.Context) ([]domain.BranchInfo, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var branches []domain.BranchInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		commit, commitErr := r.repo.CommitObject(ref.Hash())
		if commitErr != nil {
			r.logger.Warn(ctx, "skipping branch with unreadable tip", map[string]interface{}{
				"branch": ref.Name().Short(),
				"error":  commitErr.Error(),
			})
			return nil
		}

		branches = append(branches, domain.BranchInfo{
			Name:              ref.Name().Short(),
			LastCommitDate:    commit.Committer.When,
			LastCommitSubject: firstLine(commit.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk branches: %w", err)
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].LastCommitDate.After(branches[j].LastCommitDate)
	})

	r.logger.Debug(ctx, "listed local branches", map[string]interface{}{
		"count": len(branches),
		"path":  r.path,
	})

	return branches, nil
}

// Close releases any resources held by the inspector.
// For go-git, this is a no-op as the repository doesn't hold persistent resources.
func (r *GoGitInspector) Close() error {
	return nil
}

// firstLine returns the commit subject: the message up to the first newline.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return strings.TrimSpace(message[:idx])
	}
	return strings.TrimSpace(message)
}
