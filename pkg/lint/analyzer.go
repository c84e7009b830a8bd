package lint

import (
	"strings"

	"github.com/pgvet/pgvet/pkg/source"
)

// lineComment marks a SQL line comment when it starts a stripped line.
const lineComment = "--"

// Analyzer runs registered rules against a SQL document.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Validate scans the document top to bottom and collects findings.
//
// Each line is stripped of surrounding whitespace; blank lines and lines
// starting with the line-comment marker are skipped, but they still count
// toward the 1-based line numbers reported in findings. Every enabled rule
// runs against every remaining line, in rule-ID order, so the result is
// deterministic for a given document and configuration. Findings never abort
// the scan; all lines are visited before the Result is returned.
func (a *Analyzer) Validate(doc *source.Document) Result {
	var result Result

	rules := All()
	for i := 1; i <= doc.NumLines(); i++ {
		line := strings.TrimSpace(doc.Line(i))
		if line == "" || strings.HasPrefix(line, lineComment) {
			continue
		}

		for _, rule := range rules {
			if a.config.IsDisabled(rule.ID) {
				continue
			}

			opts := a.config.GetRuleOptions(rule.ID)
			for _, d := range rule.Check(doc, i, opts) {
				d.Severity = a.config.GetSeverity(rule.ID, d.Severity)
				if d.Severity == SeverityError {
					result.Errors = append(result.Errors, d)
				} else {
					result.Warnings = append(result.Warnings, d)
				}
			}
		}
	}

	return result
}

// Validate runs all registered rules with the default configuration.
func Validate(doc *source.Document) Result {
	return NewAnalyzer(nil).Validate(doc)
}
