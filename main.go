// Package main is the entry point for the branchpad CLI application.
// branchpad bundles quick-launch commands for day-to-day development:
// opening the team meeting, issue board, and CI pipelines pages, plus a
// form-driven workflow that creates a local git branch from a ticket.
package main

import (
	"os"

	"github.com/MyCarrier-DevOps/goLibMyCarrier/logger"

	"github.com/MyCarrier-DevOps/branchpad/cmd"
	"github.com/MyCarrier-DevOps/branchpad/internal/adapters/browser"
	"github.com/MyCarrier-DevOps/branchpad/internal/adapters/git"
	"github.com/MyCarrier-DevOps/branchpad/internal/adapters/jira"
	logadapter "github.com/MyCarrier-DevOps/branchpad/internal/adapters/logger"
	"github.com/MyCarrier-DevOps/branchpad/internal/adapters/notify"
	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
	"github.com/MyCarrier-DevOps/branchpad/internal/infrastructure/config"
)

func main() {
	// Create a single shared logger instance for the application
	zapLog := logger.NewZapLoggerFromConfig()
	adapter := logadapter.NewZapAdapter(zapLog)

	// Wire up production dependencies
	deps := &cmd.Dependencies{
		LoggerFactory: func() cmd.Logger {
			return adapter
		},

		ConfigLoader: config.Load,

		InspectorFactory: func(path string, _ cmd.Logger) (domain.GitInspector, error) {
			return git.NewGoGitInspector(path, adapter)
		},

		RunnerFactory: func(path string, _ cmd.Logger) domain.GitRunner {
			return git.NewCLIRunner(path, adapter)
		},

		IssueGatewayFactory: func(cfg config.JiraConfig) domain.IssueGateway {
			return jira.NewClient(cfg.BaseURL, cfg.Email, cfg.APIToken)
		},

		Notifier: notify.NewWriter(),
		Opener:   browser.NewOpener(),

		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	cmd.SetDefaultDependencies(deps)
	cmd.Execute()
}
