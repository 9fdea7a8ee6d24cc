// Package cmd provides the CLI commands for branchpad.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
	"github.com/MyCarrier-DevOps/branchpad/internal/infrastructure/config"
)

// Logger defines the logging interface used by the commands.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// Dependencies holds all injectable dependencies for the commands.
// This enables testing by allowing mock implementations to be injected.
type Dependencies struct {
	// LoggerFactory creates a logger instance.
	LoggerFactory func() Logger

	// ConfigLoader loads application configuration.
	ConfigLoader func() (*config.Config, error)

	// InspectorFactory creates a read-only git inspector for the given path.
	InspectorFactory func(path string, log Logger) (domain.GitInspector, error)

	// RunnerFactory creates a mutating git runner bound to the given path.
	RunnerFactory func(path string, log Logger) domain.GitRunner

	// IssueGatewayFactory creates the summary-lookup client.
	IssueGatewayFactory func(cfg config.JiraConfig) domain.IssueGateway

	// Notifier is the user-facing notification surface.
	Notifier domain.Notifier

	// Opener hands URLs to the OS default handler.
	Opener domain.URLOpener

	// TicketForm collects the link, id, and base-branch fields
	// interactively. Replaceable for testing.
	TicketForm func(state *BranchFormState) error

	// DescriptionForm collects or confirms the description field
	// interactively. Replaceable for testing.
	DescriptionForm func(state *BranchFormState) error

	// Palette picks a command interactively when branchpad runs bare.
	// Replaceable for testing.
	Palette func(commands []string) (string, error)

	// BranchPicker selects a branch for the switch command.
	// Replaceable for testing.
	BranchPicker BranchPicker

	// Stdout is the writer for standard output.
	Stdout io.Writer

	// Stderr is the writer for warnings/errors.
	Stderr io.Writer
}

// BranchFormState carries the branch-creation form fields between the
// interactive steps.
type BranchFormState struct {
	Link        string
	Ticket      string
	Description string
	FromCurrent bool
}

// Command-line flags.
var verbose bool

// defaultDeps holds the production dependencies.
// This is set by the production wiring in main or via SetDefaultDependencies.
var defaultDeps *Dependencies

// SetDefaultDependencies sets the default dependencies for production use.
// This should be called from main() before Execute().
func SetDefaultDependencies(deps *Dependencies) {
	defaultDeps = deps
}

// NewRootCmd creates the root command for branchpad.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(defaultDeps)
}

// NewRootCmdWithDeps creates the root command with explicit dependencies.
// This is the primary constructor that enables testing via dependency injection.
func NewRootCmdWithDeps(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "branchpad",
		Short: "Quick-launch commands for day-to-day development",
		Long: `branchpad bundles a handful of quick-launch commands: opening the team
meeting, the issue board, and the CI pipelines page, plus a form-driven
workflow that creates a local git branch from an issue-tracker ticket.

Running branchpad with no arguments opens an interactive command palette.

Examples:
  # Pick a command interactively
  branchpad

  # Create a branch from a pasted ticket link
  branchpad branch --link https://jira.example.com/browse/SYNTH-123

  # Create a branch from the current branch instead of trunk
  branchpad branch --ticket 123 --desc "retry backoff" --from-current

  # Open the pipelines page for the current branch
  branchpad open pipelines`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPalette(cmd, deps)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose/debug logging")

	rootCmd.AddCommand(newBranchCmd(deps))
	rootCmd.AddCommand(newSwitchCmd(deps))
	rootCmd.AddCommand(newOpenCmd(deps))

	return rootCmd
}

// paletteEntries are the commands offered by the bare-invocation palette,
// in display order.
var paletteEntries = []string{
	"Create branch",
	"Switch branch",
	"Open meeting",
	"Open board",
	"Open pipelines",
}

// runPalette shows the interactive command palette and dispatches the
// chosen command.
func runPalette(cmd *cobra.Command, deps *Dependencies) error {
	if deps == nil {
		return errors.New("dependencies not configured")
	}

	pick := deps.Palette
	if pick == nil {
		pick = huhPalette
	}

	choice, err := pick(paletteEntries)
	if err != nil {
		return err
	}

	switch choice {
	case "Create branch":
		return runBranchCreate(cmd, deps, branchOptions{})
	case "Switch branch":
		return runSwitch(cmd, deps)
	case "Open meeting":
		return runOpen(cmd, deps, destinationMeet)
	case "Open board":
		return runOpen(cmd, deps, destinationBoard)
	case "Open pipelines":
		return runOpen(cmd, deps, destinationPipelines)
	}

	return fmt.Errorf("unknown command: %s", choice)
}

// huhPalette is the production palette implementation.
func huhPalette(commands []string) (string, error) {
	options := make([]huh.Option[string], 0, len(commands))
	for _, name := range commands {
		options = append(options, huh.NewOption(name, name))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("branchpad").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// commandContext returns the command's context, falling back to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig loads configuration with the verbose flag applied, logging
// failures in a uniform way.
func loadConfig(ctx context.Context, deps *Dependencies, log Logger) (*config.Config, error) {
	if verbose {
		if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
			log.Warn(ctx, "could not set log level", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	cfg, err := deps.ConfigLoader()
	if err != nil {
		log.Error(ctx, "failed to load configuration", err, nil)
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// notifyFailure converts an error to a single user-visible notification.
// Errors never propagate past the command boundary in any other form.
func notifyFailure(deps *Dependencies, err error) {
	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		deps.Notifier.Failure("Missing configuration",
			fmt.Sprintf("%s (set it in your branchpad config)", err.Error()))
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		deps.Notifier.Failure("Invalid input", err.Error())
		return
	}

	var vcsErr *domain.VcsError
	if errors.As(err, &vcsErr) {
		deps.Notifier.Failure("Git command failed", err.Error())
		return
	}

	deps.Notifier.Failure("Command failed", err.Error())
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
