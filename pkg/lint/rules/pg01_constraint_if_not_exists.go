package rules

import (
	"strings"

	"github.com/pgvet/pgvet/pkg/lint"
	"github.com/pgvet/pgvet/pkg/source"
	"github.com/pgvet/pgvet/pkg/token"
)

func init() {
	lint.Register(ConstraintIfNotExists)
}

// ConstraintIfNotExists flags the ADD CONSTRAINT IF NOT EXISTS clause.
var ConstraintIfNotExists = lint.RuleDef{
	ID:          "PG01",
	Name:        "convention.constraint_if_not_exists",
	Group:       "convention",
	Description: "Flag ADD CONSTRAINT IF NOT EXISTS, which PostgreSQL does not support.",
	Severity:    lint.SeverityError,
	Check:       checkConstraintIfNotExists,
	Rationale: "PostgreSQL's ALTER TABLE grammar has no IF NOT EXISTS form for " +
		"ADD CONSTRAINT. Catching the clause before a migration runs avoids a " +
		"failed deployment.",
	BadExample:  "ALTER TABLE t ADD CONSTRAINT IF NOT EXISTS ck CHECK (x > 0);",
	GoodExample: "ALTER TABLE t ADD CONSTRAINT ck CHECK (x > 0);",
	Fix: "Drop the IF NOT EXISTS clause, or guard the statement with a DO block " +
		"that checks pg_constraint first.",
}

const invalidConstraintClause = "ADD CONSTRAINT IF NOT EXISTS"

func checkConstraintIfNotExists(doc *source.Document, line int, _ map[string]any) []lint.Diagnostic {
	if !strings.Contains(strings.TrimSpace(doc.Line(line)), invalidConstraintClause) {
		return nil
	}

	return []lint.Diagnostic{{
		RuleID:   "PG01",
		Severity: lint.SeverityError,
		Message:  "'ADD CONSTRAINT IF NOT EXISTS' is not valid PostgreSQL syntax",
		Pos:      token.Position{Line: line, Column: 1},
	}}
}
