package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
	"github.com/MyCarrier-DevOps/branchpad/internal/infrastructure/config"
	"github.com/MyCarrier-DevOps/branchpad/internal/usecases"
)

// branchOptions holds the branch command's flag values.
type branchOptions struct {
	link        string
	ticket      string
	description string
	fromCurrent bool
	noInput     bool
}

// newBranchCmd creates the branch-creation command.
func newBranchCmd(deps *Dependencies) *cobra.Command {
	var opts branchOptions

	branchCmd := &cobra.Command{
		Use:   "branch",
		Short: "Create a local branch from an issue-tracker ticket",
		Long: `branch creates a local git branch named author/TICKET/description-slug.

The ticket is resolved from a pasted ticket link or a typed identifier;
a bare number is combined with the configured default project key. When
issue-tracker credentials are configured, the description is pre-filled
from the ticket's summary. Missing fields are collected interactively
unless --no-input is set.

By default the branch is created from the trunk branch after updating it
from the remote; --from-current branches from whatever is checked out.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBranchCreate(cmd, deps, opts)
		},
	}

	branchCmd.Flags().StringVarP(&opts.link, "link", "l", "", "Ticket link to extract the issue key from")
	branchCmd.Flags().StringVarP(&opts.ticket, "ticket", "t", "", "Issue key or bare issue number")
	branchCmd.Flags().StringVarP(&opts.description, "desc", "d", "", "Branch description (slugified)")
	branchCmd.Flags().BoolVar(&opts.fromCurrent, "from-current", false, "Branch from the current branch instead of trunk")
	branchCmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Fail instead of prompting for missing fields")

	return branchCmd
}

// runBranchCreate executes the branch-creation workflow with injected
// dependencies.
func runBranchCreate(cmd *cobra.Command, deps *Dependencies, opts branchOptions) error {
	if deps == nil {
		return errors.New("dependencies not configured")
	}

	ctx := commandContext(cmd)
	log := deps.LoggerFactory()

	cfg, err := loadConfig(ctx, deps, log)
	if err != nil {
		return err
	}

	state := &BranchFormState{
		Link:        opts.link,
		Ticket:      opts.ticket,
		Description: opts.description,
		FromCurrent: opts.fromCurrent,
	}
	interactive := !opts.noInput

	if interactive && state.Link == "" && state.Ticket == "" {
		ticketForm := deps.TicketForm
		if ticketForm == nil {
			ticketForm = huhTicketForm
		}
		if err := ticketForm(state); err != nil {
			return err
		}
	}

	ref, _ := usecases.ResolveTicketReference(state.Link, state.Ticket, cfg.ProjectKey)

	log.Debug(ctx, "resolved ticket reference", map[string]interface{}{
		"link":   state.Link,
		"id":     state.Ticket,
		"ticket": ref.String(),
	})

	// Best-effort description autofill; failures never block creation.
	autofillDescription(ctx, deps, cfg.Jira, ref, state, log)

	if interactive && state.Description == "" {
		descriptionForm := deps.DescriptionForm
		if descriptionForm == nil {
			descriptionForm = huhDescriptionForm
		}
		if err := descriptionForm(state); err != nil {
			return err
		}
	}

	mode := domain.FromTrunk
	if state.FromCurrent {
		mode = domain.FromCurrent
	}

	trunk := cfg.TrunkBranch
	if trunk == "" {
		trunk = domain.DefaultTrunkBranch
	}
	if mode == domain.FromTrunk {
		deps.Notifier.Progress(fmt.Sprintf("Updating %s and creating branch…", trunk))
	} else {
		deps.Notifier.Progress("Creating branch…")
	}

	runner := deps.RunnerFactory(cfg.WorkDir, log)
	creator := usecases.NewBranchCreator(runner, log)

	name, err := creator.Create(ctx, domain.CreateBranchInput{
		WorkDir:     cfg.WorkDir,
		Author:      cfg.Author,
		Ticket:      ref,
		Slug:        usecases.Slugify(state.Description),
		Mode:        mode,
		TrunkBranch: cfg.TrunkBranch,
	})
	if err != nil {
		log.Error(ctx, "branch creation failed", err, map[string]interface{}{
			"ticket": ref.String(),
		})
		notifyFailure(deps, err)
		return err
	}

	deps.Notifier.Success("Branch created", name)
	return nil
}

// autofillDescription fetches the ticket summary to pre-populate an empty
// description field. The lookup is advisory: lookup failures surface as a
// non-blocking notification, suppressed on repeat for the same reference.
func autofillDescription(
	ctx context.Context,
	deps *Dependencies,
	jira config.JiraConfig,
	ref domain.TicketReference,
	state *BranchFormState,
	log Logger,
) {
	if state.Description != "" || !jira.Enabled() {
		return
	}

	session := usecases.NewAutofillSession()
	token, fetch := session.Begin(ref)
	if !fetch {
		return
	}

	gateway := deps.IssueGatewayFactory(jira)
	deps.Notifier.Progress(fmt.Sprintf("Fetching summary for %s…", ref))

	summary, err := gateway.FetchSummary(ctx, ref)
	if err != nil {
		if session.Fail(token, ref) {
			log.Warn(ctx, "summary lookup failed", map[string]interface{}{
				"ticket": ref.String(),
				"error":  err.Error(),
			})
			deps.Notifier.Failure("Summary lookup failed", err.Error())
		}
		return
	}

	if session.Complete(token, ref) {
		state.Description = summary
	}
}

// huhTicketForm is the production ticket form implementation.
func huhTicketForm(state *BranchFormState) error {
	base := "trunk"
	if state.FromCurrent {
		base = "current"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ticket link").
				Description("Paste a ticket URL to auto-detect the issue key (optional)").
				Placeholder("https://jira.example.com/browse/PROJ-123").
				Value(&state.Link),

			huh.NewInput().
				Title("Ticket").
				Description("Issue key, or a bare number for the default project").
				Placeholder("PROJ-123 or 123").
				Value(&state.Ticket).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" && strings.TrimSpace(state.Link) == "" {
						return fmt.Errorf("ticket is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Base branch").
				Options(
					huh.NewOption("Trunk (update first)", "trunk"),
					huh.NewOption("Current branch", "current"),
				).
				Value(&base),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	state.FromCurrent = base == "current"
	return nil
}

// huhDescriptionForm is the production description form implementation.
func huhDescriptionForm(state *BranchFormState) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Description("Short description for the branch name").
				Placeholder("e.g. retry backoff for uploads").
				Value(&state.Description).
				Validate(func(s string) error {
					if usecases.Slugify(s) == "" {
						return fmt.Errorf("description is required")
					}
					return nil
				}),
		),
	)
	return form.Run()
}
