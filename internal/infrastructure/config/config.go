// Package config provides configuration loading for the branchpad application.
// Settings come from a yaml config file with environment overrides; the
// issue-tracker API token may additionally come from HashiCorp Vault.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/MyCarrier-DevOps/goLibMyCarrier/vault"
)

// Environment variable names.
const (
	// EnvPrefix prefixes every config key's environment override,
	// e.g. BRANCHPAD_WORKDIR, BRANCHPAD_JIRA_BASE_URL.
	EnvPrefix = "BRANCHPAD"

	// EnvLogLevel is the log level (debug, info, error).
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogAppName is the application name for log context.
	EnvLogAppName = "LOG_APP_NAME"

	// EnvVaultJiraTokenPath is the path in Vault KV where the issue-tracker
	// API token is stored. When set, Vault is preferred over the config value.
	EnvVaultJiraTokenPath = "VAULT_JIRA_TOKEN_PATH"

	// EnvVaultJiraTokenMount is the Vault KV mount point (defaults to "secret").
	EnvVaultJiraTokenMount = "VAULT_JIRA_TOKEN_MOUNT"
)

// Default values.
const (
	DefaultLogLevel       = "info"
	DefaultLogAppName     = "branchpad"
	DefaultVaultMount     = "secret"
	DefaultVaultSecretKey = "token"
)

// Configuration errors.
var (
	// ErrVaultClientFailed indicates failure to create or authenticate with Vault.
	ErrVaultClientFailed = errors.New("failed to create Vault client")

	// ErrVaultSecretNotFound indicates the secret was not found in Vault.
	ErrVaultSecretNotFound = errors.New("issue-tracker token not found in Vault")

	// ErrVaultTokenMissing indicates the secret exists but has no usable token key.
	ErrVaultTokenMissing = errors.New("issue-tracker token secret has no \"token\" key")
)

// VaultClient defines the interface for Vault operations.
// This interface allows for dependency injection and testing.
type VaultClient interface {
	// GetKVSecret retrieves a secret from Vault's KV v2 secrets engine.
	GetKVSecret(ctx context.Context, path, mount string) (map[string]interface{}, error)
}

// VaultClientFactory creates a VaultClient using AppRole authentication.
type VaultClientFactory func(ctx context.Context) (VaultClient, error)

// DefaultVaultClientFactory creates a VaultClient using goLibMyCarrier/vault
// with AppRole auth. Uses VAULT_ADDRESS, VAULT_ROLE_ID, VAULT_SECRET_ID.
func DefaultVaultClientFactory(ctx context.Context) (VaultClient, error) {
	vaultConfig, err := vault.VaultLoadConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultClientFailed, err)
	}

	client, err := vault.CreateVaultClient(ctx, vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultClientFailed, err)
	}

	return client, nil
}

// JiraConfig holds the issue-tracker lookup settings. The lookup is
// optional: when BaseURL, Email, or APIToken is empty it is skipped.
type JiraConfig struct {
	BaseURL  string
	Email    string
	APIToken string
}

// Enabled reports whether the summary lookup is fully configured.
func (c JiraConfig) Enabled() bool {
	return c.BaseURL != "" && c.Email != "" && c.APIToken != ""
}

// URLConfig holds the quick-launch destinations.
type URLConfig struct {
	Meet      string
	Board     string
	Pipelines string
}

// Config holds all application configuration.
type Config struct {
	// WorkDir is the local checkout branch commands run against.
	WorkDir string

	// Author is the version-control author identifier used in branch names.
	Author string

	// ProjectKey is the default issue project key, uppercased at load.
	ProjectKey string

	// TrunkBranch is the designated stable branch for from-trunk creation.
	TrunkBranch string

	// Jira holds the summary-lookup settings.
	Jira JiraConfig

	// URLs holds the quick-launch destinations.
	URLs URLConfig

	// LogLevel is the logging level (debug, info, error).
	LogLevel string

	// LogAppName is the application name for log context.
	LogAppName string
}

// Load loads the application configuration from the config file and
// environment variables. The Jira API token is loaded from Vault when
// VAULT_JIRA_TOKEN_PATH is set.
func Load() (*Config, error) {
	return LoadWithVaultClient(context.Background(), nil)
}

// LoadWithVaultClient loads configuration using the provided VaultClient
// factory. If vaultClientFactory is nil, DefaultVaultClientFactory is used.
// This function enables dependency injection for testing.
func LoadWithVaultClient(ctx context.Context, vaultClientFactory VaultClientFactory) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from env.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		WorkDir:     v.GetString("workdir"),
		Author:      v.GetString("author"),
		ProjectKey:  strings.ToUpper(strings.TrimSpace(v.GetString("project_key"))),
		TrunkBranch: v.GetString("trunk_branch"),
		Jira: JiraConfig{
			BaseURL:  v.GetString("jira.base_url"),
			Email:    v.GetString("jira.email"),
			APIToken: v.GetString("jira.api_token"),
		},
		URLs: URLConfig{
			Meet:      v.GetString("urls.meet"),
			Board:     v.GetString("urls.board"),
			Pipelines: v.GetString("urls.pipelines"),
		},
		LogLevel:   envOrDefault(EnvLogLevel, DefaultLogLevel),
		LogAppName: envOrDefault(EnvLogAppName, DefaultLogAppName),
	}

	// Vault is preferred for the API token when configured.
	if vaultPath := os.Getenv(EnvVaultJiraTokenPath); vaultPath != "" {
		token, err := loadTokenFromVault(ctx, vaultClientFactory, vaultPath)
		if err != nil {
			return nil, err
		}
		cfg.Jira.APIToken = token
	}

	return cfg, nil
}

// loadTokenFromVault reads the issue-tracker API token from Vault KV v2.
func loadTokenFromVault(
	ctx context.Context,
	vaultClientFactory VaultClientFactory,
	path string,
) (string, error) {
	if vaultClientFactory == nil {
		vaultClientFactory = DefaultVaultClientFactory
	}

	client, err := vaultClientFactory(ctx)
	if err != nil {
		return "", err
	}

	mount := os.Getenv(EnvVaultJiraTokenMount)
	if mount == "" {
		mount = DefaultVaultMount
	}

	secretData, err := client.GetKVSecret(ctx, path, mount)
	if err != nil {
		return "", fmt.Errorf("%w at path %s: %w", ErrVaultSecretNotFound, path, err)
	}

	token, ok := secretData[DefaultVaultSecretKey].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("%w at path %s", ErrVaultTokenMissing, path)
	}

	return token, nil
}

// configDir returns the directory searched for the config file:
// $XDG_CONFIG_HOME/branchpad, falling back to ~/.config/branchpad.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "branchpad")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "branchpad")
}

// envOrDefault returns the environment value or the default when unset.
func envOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
