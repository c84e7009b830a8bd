package lint

import (
	"github.com/pgvet/pgvet/pkg/core"
	"github.com/pgvet/pgvet/pkg/source"
	"github.com/pgvet/pgvet/pkg/token"
)

// Severity re-exports for convenience so rule files only import lint.
type Severity = core.Severity

// Severity levels for diagnostics.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// ParseSeverity converts a string to a Severity value.
var ParseSeverity = core.ParseSeverity

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition. Rules are stateless - all context
// comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "PG01"
	Name        string    // Human-readable name, e.g., "structure.unclosed_do_block"
	Group       string    // Category, e.g., "structure", "convention"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one line of a document and returns diagnostics.
// The line parameter is the 1-based index of the line under inspection; rules
// receive the whole document so forward scans past the trigger line are
// possible. The opts parameter contains rule-specific options from
// configuration.
type CheckFunc func(doc *source.Document, line int, opts map[string]any) []Diagnostic

// Info extracts metadata from a RuleDef for documentation/tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a single finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position
}

// Result is the outcome of validating one document. Errors and Warnings each
// preserve detection order: top to bottom by line, rule ID order within a
// line. A Result is immutable once returned.
type Result struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// HasErrors returns true if at least one error-severity finding was made.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}
