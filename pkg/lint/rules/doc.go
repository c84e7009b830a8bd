// Package rules contains the PostgreSQL pitfall checks.
//
// Rules are organized by prefix:
//
//   - pg01: invalid ADD CONSTRAINT IF NOT EXISTS clause
//   - pg02: unclosed anonymous DO block
//   - pg03: function possibly missing dollar-quote delimiters
//
// Import this package to register all rules:
//
//	import _ "github.com/pgvet/pgvet/pkg/lint/rules"
package rules
