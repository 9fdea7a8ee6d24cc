package usecases

import (
	"context"
	"strings"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// Logger defines the logging interface required by the use cases.
// This abstracts the logger dependency to avoid coupling to a specific
// implementation.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// BranchCreator validates resolved branch inputs and performs the
// version-control side effects to create the branch.
type BranchCreator struct {
	runner domain.GitRunner
	logger Logger
}

// NewBranchCreator creates a BranchCreator with the given dependencies.
func NewBranchCreator(runner domain.GitRunner, log Logger) *BranchCreator {
	return &BranchCreator{
		runner: runner,
		logger: log,
	}
}

// Create validates the input and creates the branch, returning the new
// branch name. Validation is ordered and short-circuits on the first
// failure: configuration (working directory, then author), ticket
// presence, ticket shape, description presence. Only after all checks
// pass does any version-control command run.
//
// Every step either fully succeeds or the whole operation aborts with
// the originating error surfaced unmodified. No retries, no rollback:
// partial state (trunk checked out, new branch absent) is left for the
// user to resolve.
func (c *BranchCreator) Create(ctx context.Context, input domain.CreateBranchInput) (string, error) {
	if strings.TrimSpace(input.WorkDir) == "" {
		return "", domain.NewConfigurationError("workdir")
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		return "", domain.NewConfigurationError("author")
	}

	if input.Ticket == "" {
		return "", domain.NewValidationError("ticket", "ticket is required")
	}
	if !input.Ticket.IsValid() {
		return "", domain.NewValidationError("ticket", "ticket must look like PROJECT-123")
	}

	if input.Slug == "" {
		return "", domain.NewValidationError("description", "description is required")
	}

	trunk := input.TrunkBranch
	if trunk == "" {
		trunk = domain.DefaultTrunkBranch
	}

	if input.Mode == domain.FromTrunk {
		c.logger.Info(ctx, "updating trunk before branching", map[string]interface{}{
			"trunk":   trunk,
			"workdir": input.WorkDir,
		})

		if err := c.runner.Checkout(ctx, trunk); err != nil {
			return "", err
		}
		if err := c.runner.Pull(ctx); err != nil {
			return "", err
		}
	}

	descriptor := domain.BranchDescriptor{
		Author: author,
		Ticket: input.Ticket,
		Slug:   input.Slug,
	}
	name := descriptor.BranchName()

	if err := c.runner.CheckoutNewBranch(ctx, name); err != nil {
		return "", err
	}

	c.logger.Info(ctx, "branch created", map[string]interface{}{
		"branch":  name,
		"base":    input.Mode.String(),
		"workdir": input.WorkDir,
	})

	return name, nil
}
