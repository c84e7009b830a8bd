package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pgvet/pgvet/internal/cli/config"
	"github.com/pgvet/pgvet/internal/cli/output"
	"github.com/pgvet/pgvet/pkg/lint"
	_ "github.com/pgvet/pgvet/pkg/lint/rules" // register rules
	"github.com/pgvet/pgvet/pkg/source"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path     string   // SQL file path
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a SQL file for PostgreSQL syntax pitfalls",
		Long: `Scan a SQL file for known PostgreSQL migration pitfalls.

Every non-blank, non-comment line is checked against the registered rules.
Errors make the command exit non-zero; warnings are advisory. The report
ends with a naive statement count (the file split on every semicolon) and
a deployment-readiness verdict.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check a migration file
  pgvet check migrations/0042_add_billing.sql

  # Check the file named by "input" in pgvet.yaml
  pgvet check

  # Output as JSON
  pgvet check schema.sql --format json

  # Disable specific rules
  pgvet check schema.sql --disable PG03

  # Only report errors (ignore warnings)
  pgvet check schema.sql --severity error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

// CheckOutput is the JSON output for the check command.
type CheckOutput struct {
	File           string            `json:"file"`
	Errors         []CheckDiagnostic `json:"errors"`
	Warnings       []CheckDiagnostic `json:"warnings"`
	StatementCount int               `json:"statement_count"`
	Ready          bool              `json:"ready"`
}

// CheckDiagnostic is one finding in JSON output.
type CheckDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	path := opts.Path
	if path == "" {
		path = cfg.Input
	}
	if path == "" {
		return fmt.Errorf("no SQL file given: pass a path argument or set input in pgvet.yaml")
	}

	// The only fatal failure: the input cannot be read. Everything found
	// during validation is collected and reported, never thrown.
	doc, err := source.ReadFile(path)
	if err != nil {
		return err
	}

	lintCfg := buildLintConfig(cfg, opts)
	result := lint.NewAnalyzer(lintCfg).Validate(doc)

	// Filter advisory findings by the severity threshold; errors always show.
	result.Warnings = filterBySeverity(result.Warnings, opts.Severity)

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(buildCheckOutput(path, doc, result)); err != nil {
			return err
		}
	} else {
		renderCheckReport(r, path, doc, result)
	}

	if result.HasErrors() {
		return fmt.Errorf("%d syntax errors found", len(result.Errors))
	}
	return nil
}

// buildLintConfig merges project config and CLI flags into a lint config.
// CLI flags take precedence.
func buildLintConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.All() {
			if !enabledSet[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

// filterBySeverity drops diagnostics below the severity threshold.
func filterBySeverity(diags []lint.Diagnostic, severityThreshold string) []lint.Diagnostic {
	threshold, ok := lint.ParseSeverity(severityThreshold)
	if !ok {
		threshold = lint.SeverityWarning
	}

	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.Severity <= threshold {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func buildCheckOutput(path string, doc *source.Document, result lint.Result) *CheckOutput {
	out := &CheckOutput{
		File:           path,
		Errors:         make([]CheckDiagnostic, 0, len(result.Errors)),
		Warnings:       make([]CheckDiagnostic, 0, len(result.Warnings)),
		StatementCount: doc.StatementCount(),
		Ready:          !result.HasErrors(),
	}
	for _, d := range result.Errors {
		out.Errors = append(out.Errors, toCheckDiagnostic(d))
	}
	for _, d := range result.Warnings {
		out.Warnings = append(out.Warnings, toCheckDiagnostic(d))
	}
	return out
}

func toCheckDiagnostic(d lint.Diagnostic) CheckDiagnostic {
	return CheckDiagnostic{
		RuleID:   d.RuleID,
		Severity: d.Severity.String(),
		Message:  d.Message,
		Line:     d.Pos.Line,
	}
}

// renderCheckReport writes the human-readable report for text and markdown
// modes. Findings appear in detection order.
func renderCheckReport(r *output.Renderer, path string, doc *source.Document, result lint.Result) {
	r.Println(r.Styles().Header.Render("SQL Syntax Validation Results"))
	r.Println(r.Styles().Muted.Render(strings.Repeat("=", 40)))
	r.Println(r.Styles().FilePath.Render(path))
	r.Println("")

	if len(result.Errors) > 0 {
		r.Println(r.Styles().Error.Render(fmt.Sprintf("ERRORS FOUND (%d):", len(result.Errors))))
		for _, d := range result.Errors {
			r.Printf("  Line %d: %s  %s\n", d.Pos.Line, d.Message, r.Styles().Muted.Render("["+d.RuleID+"]"))
		}
	} else {
		r.Success("No syntax errors found")
	}

	if len(result.Warnings) > 0 {
		r.Println("")
		r.Println(r.Styles().Warning.Render(fmt.Sprintf("WARNINGS (%d):", len(result.Warnings))))
		for _, d := range result.Warnings {
			r.Printf("  Line %d: %s  %s\n", d.Pos.Line, d.Message, r.Styles().Muted.Render("["+d.RuleID+"]"))
		}
	} else {
		r.Success("No warnings")
	}

	r.Println("")
	r.Printf("File contains %d SQL statements\n", doc.StatementCount())
	if result.HasErrors() {
		r.Println(r.Styles().Error.Render("Fix errors before deployment"))
	} else {
		r.Success("Ready for deployment")
	}
}
