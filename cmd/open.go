package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// Quick-launch destinations.
const (
	destinationMeet      = "meet"
	destinationBoard     = "board"
	destinationPipelines = "pipelines"
)

// newOpenCmd creates the quick-launch command group.
func newOpenCmd(deps *Dependencies) *cobra.Command {
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a configured destination in the browser",
	}

	openCmd.AddCommand(&cobra.Command{
		Use:          destinationMeet,
		Short:        "Open the team meeting link",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOpen(cmd, deps, destinationMeet)
		},
	})

	openCmd.AddCommand(&cobra.Command{
		Use:          destinationBoard,
		Short:        "Open the issue board",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOpen(cmd, deps, destinationBoard)
		},
	})

	openCmd.AddCommand(&cobra.Command{
		Use:          destinationPipelines,
		Short:        "Open the CI pipelines page filtered to the current branch",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOpen(cmd, deps, destinationPipelines)
		},
	})

	return openCmd
}

// runOpen resolves the destination URL and hands it to the OS opener.
func runOpen(cmd *cobra.Command, deps *Dependencies, destination string) error {
	if deps == nil {
		return errors.New("dependencies not configured")
	}

	ctx := commandContext(cmd)
	log := deps.LoggerFactory()

	cfg, err := loadConfig(ctx, deps, log)
	if err != nil {
		return err
	}

	var target string
	switch destination {
	case destinationMeet:
		target = cfg.URLs.Meet
		if target == "" {
			err = domain.NewConfigurationError("urls.meet")
		}
	case destinationBoard:
		target = cfg.URLs.Board
		if target == "" {
			err = domain.NewConfigurationError("urls.board")
		}
	case destinationPipelines:
		target, err = pipelinesURL(cmd, deps, cfg.URLs.Pipelines, cfg.WorkDir, log)
	default:
		err = fmt.Errorf("unknown destination: %s", destination)
	}
	if err != nil {
		notifyFailure(deps, err)
		return err
	}

	if err := deps.Opener.Open(target); err != nil {
		log.Error(ctx, "failed to open URL", err, map[string]interface{}{
			"url": target,
		})
		notifyFailure(deps, err)
		return err
	}

	log.Info(ctx, "opened destination", map[string]interface{}{
		"destination": destination,
		"url":         target,
	})
	deps.Notifier.Success("Opened "+destination, "")
	return nil
}

// pipelinesURL builds the pipelines URL with a ref query parameter set to
// the url-encoded current branch.
func pipelinesURL(cmd *cobra.Command, deps *Dependencies, base, workDir string, log Logger) (string, error) {
	if base == "" {
		return "", domain.NewConfigurationError("urls.pipelines")
	}
	if workDir == "" {
		return "", domain.NewConfigurationError("workdir")
	}

	ctx := commandContext(cmd)

	inspector, err := deps.InspectorFactory(workDir, log)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := inspector.Close(); closeErr != nil {
			log.Warn(ctx, "failed to close git inspector", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	branch, err := inspector.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid pipelines URL: %w", err)
	}
	query := parsed.Query()
	query.Set("ref", branch)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
