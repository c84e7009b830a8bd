// Package lint provides a line-oriented checking framework for SQL sources.
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package
// is imported:
//
//	import _ "github.com/pgvet/pgvet/pkg/lint/rules"
//
// # Running Checks
//
// The Analyzer scans a source.Document line by line and applies every enabled
// rule to each non-blank, non-comment line:
//
//	doc := source.New(sqlText)
//	result := lint.Validate(doc)
//	for _, d := range result.Errors {
//		fmt.Printf("Line %d: %s\n", d.Pos.Line, d.Message)
//	}
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig()
//	config.Disable("PG01")
//	config.SetSeverity("PG03", lint.SeverityError)
//	config.SetRuleOptions("PG03", map[string]any{"window_lines": 20})
//
// # Creating Custom Rules
//
// Define a RuleDef and register it from an init() function:
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "my.custom_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
