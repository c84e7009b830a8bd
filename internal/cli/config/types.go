// Package config provides configuration management for the pgvet CLI.
//
// Configuration is loaded from, in increasing precedence: built-in defaults,
// a pgvet.yaml file, PGVET_-prefixed environment variables, and CLI flags.
package config

// RuleOptions holds rule-specific options from the config file.
type RuleOptions map[string]any

// LintConfig controls rule selection and severity.
type LintConfig struct {
	// Disabled lists rule IDs to skip entirely.
	Disabled []string `koanf:"disabled"`

	// Severity maps rule IDs to severity override names (error, warning,
	// info, hint).
	Severity map[string]string `koanf:"severity"`

	// Rules maps rule IDs to rule-specific options.
	Rules map[string]RuleOptions `koanf:"rules"`
}

// Config holds all CLI configuration options.
type Config struct {
	// Input is the SQL file to check when no path argument is given.
	Input        string      `koanf:"input"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Lint         *LintConfig `koanf:"lint"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
