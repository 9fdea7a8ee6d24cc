package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// newSwitchCmd creates the branch-switch command.
func newSwitchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "switch",
		Short: "Check out a recent local branch",
		Long: `switch lists local branches ordered by most recent commit and checks
out the one you pick.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSwitch(cmd, deps)
		},
	}
}

// BranchPicker selects one branch from the listing. Replaceable for testing
// via Dependencies.
type BranchPicker func(branches []domain.BranchInfo) (string, error)

// runSwitch lists recent branches, asks the user to pick one, and checks
// it out.
func runSwitch(cmd *cobra.Command, deps *Dependencies) error {
	if deps == nil {
		return errors.New("dependencies not configured")
	}

	ctx := commandContext(cmd)
	log := deps.LoggerFactory()

	cfg, err := loadConfig(ctx, deps, log)
	if err != nil {
		return err
	}

	if cfg.WorkDir == "" {
		err := domain.NewConfigurationError("workdir")
		notifyFailure(deps, err)
		return err
	}

	inspector, err := deps.InspectorFactory(cfg.WorkDir, log)
	if err != nil {
		notifyFailure(deps, err)
		return err
	}
	defer func() {
		if closeErr := inspector.Close(); closeErr != nil {
			log.Warn(ctx, "failed to close git inspector", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	branches, err := inspector.ListBranches(ctx)
	if err != nil {
		notifyFailure(deps, err)
		return err
	}
	if len(branches) == 0 {
		err := errors.New("no local branches found")
		notifyFailure(deps, err)
		return err
	}

	pick := deps.BranchPicker
	if pick == nil {
		pick = huhBranchPicker
	}

	name, err := pick(branches)
	if err != nil {
		return err
	}

	runner := deps.RunnerFactory(cfg.WorkDir, log)
	if err := runner.Checkout(ctx, name); err != nil {
		log.Error(ctx, "branch switch failed", err, map[string]interface{}{
			"branch": name,
		})
		notifyFailure(deps, err)
		return err
	}

	deps.Notifier.Success("Switched to "+name, "")
	return nil
}

// huhBranchPicker is the production branch picker implementation.
func huhBranchPicker(branches []domain.BranchInfo) (string, error) {
	options := make([]huh.Option[string], 0, len(branches))
	for _, b := range branches {
		label := fmt.Sprintf("%s: %s (%s)",
			b.Name, b.LastCommitSubject, b.LastCommitDate.Format("2006-01-02"))
		options = append(options, huh.NewOption(label, b.Name))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Switch branch").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}
