// Package source models a SQL source text as an ordered sequence of lines.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Document is a single SQL source text, decomposed by newline into lines.
// It is immutable once created. Lines are 1-indexed for reporting.
type Document struct {
	raw   string
	lines []string
}

// New creates a Document from raw text.
func New(text string) *Document {
	return &Document{
		raw:   text,
		lines: strings.Split(text, "\n"),
	}
}

// ReadFile reads a Document from disk.
func ReadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SQL file %s: %w", path, err)
	}
	return New(string(content)), nil
}

// Raw returns the full original text.
func (d *Document) Raw() string {
	return d.raw
}

// NumLines returns the number of lines in the document.
func (d *Document) NumLines() int {
	return len(d.lines)
}

// Line returns the raw line at the given 1-based index.
// Out-of-range indexes return the empty string.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// StatementCount returns the number of pieces produced by splitting the raw
// text on every semicolon. This is a rough indicator, not an exact statement
// count: semicolons inside string literals or block comments inflate it.
func (d *Document) StatementCount() int {
	return strings.Count(d.raw, ";") + 1
}
