package rules

import (
	"strings"

	"github.com/pgvet/pgvet/pkg/lint"
	"github.com/pgvet/pgvet/pkg/source"
	"github.com/pgvet/pgvet/pkg/token"
)

func init() {
	lint.Register(UnclosedDoBlock)
}

// UnclosedDoBlock flags anonymous DO blocks that are never closed.
var UnclosedDoBlock = lint.RuleDef{
	ID:          "PG02",
	Name:        "structure.unclosed_do_block",
	Group:       "structure",
	Description: "Flag DO $$ blocks with no closing $$; before the end of the file.",
	Severity:    lint.SeverityError,
	Check:       checkUnclosedDoBlock,
	Rationale: "A DO block whose dollar-quoted body is never closed swallows the " +
		"rest of the script as a string literal, so every later statement " +
		"silently disappears into the block.",
	BadExample:  "DO $$\nBEGIN\n  NULL;\nEND",
	GoodExample: "DO $$\nBEGIN\n  NULL;\nEND $$;",
	Fix:         "Terminate the block with $$; on its own line or at the end of the last line.",
}

const (
	doBlockOpener = "DO $$"
	doBlockCloser = "$$;"
)

func checkUnclosedDoBlock(doc *source.Document, line int, _ map[string]any) []lint.Diagnostic {
	trimmed := strings.TrimSpace(doc.Line(line))
	if !strings.HasPrefix(trimmed, doBlockOpener) || strings.HasSuffix(trimmed, doBlockCloser) {
		return nil
	}

	if _, ok := findBlockClose(doc, line); ok {
		// A closing line exists, so the block is presumed well-formed. Tag
		// names are not matched; a $tag$ body closed by a bare $$; passes.
		return nil
	}

	return []lint.Diagnostic{{
		RuleID:   "PG02",
		Severity: lint.SeverityError,
		Message:  "DO block not properly closed",
		Pos:      token.Position{Line: line, Column: 1},
	}}
}

// findBlockClose scans forward from the trigger line (inclusive) for the
// first line whose stripped form ends with the dollar-quote closer and
// statement terminator. The second return value is false when the scan
// reaches the end of the document without a match.
func findBlockClose(doc *source.Document, from int) (int, bool) {
	for i := from; i <= doc.NumLines(); i++ {
		if strings.HasSuffix(strings.TrimSpace(doc.Line(i)), doBlockCloser) {
			return i, true
		}
	}
	return 0, false
}
