package rules

import (
	"strings"

	"github.com/pgvet/pgvet/pkg/lint"
	"github.com/pgvet/pgvet/pkg/source"
	"github.com/pgvet/pgvet/pkg/token"
)

func init() {
	lint.Register(FunctionDelimiter)
}

// FunctionDelimiter warns about function definitions with no dollar-quote
// delimiter in sight.
var FunctionDelimiter = lint.RuleDef{
	ID:          "PG03",
	Name:        "structure.function_delimiter",
	Group:       "structure",
	Description: "Warn when CREATE OR REPLACE FUNCTION has no $$ delimiter nearby.",
	Severity:    lint.SeverityWarning,
	Check:       checkFunctionDelimiter,
	ConfigKeys:  []string{"window_lines"},
	Rationale: "A function body without dollar-quoting needs every embedded quote " +
		"escaped, which rarely survives editing. This is a heuristic: bodies " +
		"using a custom $tag$ or opening beyond the inspected window are " +
		"reported even when valid.",
	BadExample:  "CREATE OR REPLACE FUNCTION f() RETURNS int AS BEGIN RETURN 1; END;",
	GoodExample: "CREATE OR REPLACE FUNCTION f() RETURNS int AS $$\nBEGIN\n  RETURN 1;\nEND\n$$ LANGUAGE plpgsql;",
	Fix:         "Wrap the function body in $$ ... $$ (or a tagged $body$ ... $body$ pair).",
}

const (
	createFunctionClause = "CREATE OR REPLACE FUNCTION"
	dollarQuoteDelimiter = "$$"

	// defaultDelimiterWindow is how many lines past the trigger line are
	// inspected for the delimiter.
	defaultDelimiterWindow = 10
)

func checkFunctionDelimiter(doc *source.Document, line int, opts map[string]any) []lint.Diagnostic {
	if !strings.Contains(strings.TrimSpace(doc.Line(line)), createFunctionClause) {
		return nil
	}

	window := lint.GetIntOption(opts, "window_lines", defaultDelimiterWindow)
	end := line + window
	if end > doc.NumLines() {
		end = doc.NumLines()
	}

	var body strings.Builder
	for i := line; i <= end; i++ {
		body.WriteString(doc.Line(i))
	}
	if strings.Contains(body.String(), dollarQuoteDelimiter) {
		return nil
	}

	return []lint.Diagnostic{{
		RuleID:   "PG03",
		Severity: lint.SeverityWarning,
		Message:  "Function may be missing proper delimiters",
		Pos:      token.Position{Line: line, Column: 1},
	}}
}
