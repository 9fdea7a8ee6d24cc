package git

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// commandTimeout bounds each git subprocess. The underlying commands have
// no timeout of their own; a hung pull should not hang the whole command.
const commandTimeout = 30 * time.Second

// CLIRunner implements domain.GitRunner by executing the git binary in a
// fixed working directory. Failures carry the command's combined output
// verbatim so the user sees exactly what git said.
type CLIRunner struct {
	workDir string
	logger  Logger
}

// NewCLIRunner creates a runner bound to the given working directory.
func NewCLIRunner(workDir string, log Logger) *CLIRunner {
	return &CLIRunner{
		workDir: workDir,
		logger:  log,
	}
}

// Checkout switches the working directory to an existing branch.
func (r *CLIRunner) Checkout(ctx context.Context, branch string) error {
	return r.run(ctx, "checkout", branch)
}

// Pull updates the currently checked out branch from its remote.
func (r *CLIRunner) Pull(ctx context.Context) error {
	return r.run(ctx, "pull")
}

// CheckoutNewBranch creates and switches to a new branch.
func (r *CLIRunner) CheckoutNewBranch(ctx context.Context, branch string) error {
	return r.run(ctx, "checkout", "-b", branch)
}

func (r *CLIRunner) run(ctx context.Context, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	op := strings.Join(args, " ")
	r.logger.Debug(ctx, "running git command", map[string]interface{}{
		"args":    op,
		"workdir": r.workDir,
	})

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		text := strings.TrimSpace(string(output))
		if ctx.Err() != nil {
			text = "git " + op + " timed out"
		}
		return &domain.VcsError{
			Op:     op,
			Output: text,
			Err:    err,
		}
	}

	return nil
}
