package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgvet/pgvet/pkg/lint"
	_ "github.com/pgvet/pgvet/pkg/lint/rules" // register rules
	"github.com/pgvet/pgvet/pkg/source"
)

func TestValidateCleanInput(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{name: "simple select", sql: "SELECT 1;"},
		{name: "empty document", sql: ""},
		{name: "only comments", sql: "-- a comment\n-- another"},
		{name: "valid constraint", sql: "ALTER TABLE t ADD CONSTRAINT ck CHECK (x > 0);"},
		{name: "closed do block", sql: "DO $$\nBEGIN NULL; END $$;"},
		{name: "single line do block", sql: "DO $$ BEGIN NULL; END $$;"},
		{name: "function with delimiters", sql: "CREATE OR REPLACE FUNCTION f() RETURNS int AS $$\nBEGIN\n  RETURN 1;\nEND\n$$ LANGUAGE plpgsql;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lint.Validate(source.New(tt.sql))

			assert.Empty(t, result.Errors)
			assert.Empty(t, result.Warnings)
			assert.False(t, result.HasErrors())
		})
	}
}

func TestValidateInvalidConstraint(t *testing.T) {
	result := lint.Validate(source.New("ALTER TABLE t ADD CONSTRAINT IF NOT EXISTS ck CHECK (x>0);"))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "PG01", result.Errors[0].RuleID)
	assert.Equal(t, 1, result.Errors[0].Pos.Line)
	assert.Contains(t, result.Errors[0].Message, "ADD CONSTRAINT IF NOT EXISTS")
	assert.Empty(t, result.Warnings)
}

func TestValidateUnclosedDoBlock(t *testing.T) {
	result := lint.Validate(source.New("DO $$\nBEGIN\n  NULL;\nEND"))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "PG02", result.Errors[0].RuleID)
	assert.Equal(t, 1, result.Errors[0].Pos.Line)
	assert.Equal(t, "DO block not properly closed", result.Errors[0].Message)
}

func TestValidateFunctionWithoutDelimiters(t *testing.T) {
	result := lint.Validate(source.New("CREATE OR REPLACE FUNCTION f() RETURNS int AS BEGIN RETURN 1; END;"))

	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "PG03", result.Warnings[0].RuleID)
	assert.Equal(t, 1, result.Warnings[0].Pos.Line)
	assert.Contains(t, result.Warnings[0].Message, "may be missing proper delimiters")
}

func TestValidateLineNumbersCountSkippedLines(t *testing.T) {
	// Blank and comment lines are never checked but still count toward
	// the reported line numbers.
	sql := "-- migration header\n\nSELECT 1;\n\nALTER TABLE t ADD CONSTRAINT IF NOT EXISTS ck CHECK (x>0);"

	result := lint.Validate(source.New(sql))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 5, result.Errors[0].Pos.Line)
}

func TestValidateCommentedTriggerIsSkipped(t *testing.T) {
	result := lint.Validate(source.New("-- ALTER TABLE t ADD CONSTRAINT IF NOT EXISTS ck CHECK (x>0);"))

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateFindingsInDetectionOrder(t *testing.T) {
	sql := "ALTER TABLE a ADD CONSTRAINT IF NOT EXISTS c1 CHECK (x>0);\n" +
		"ALTER TABLE b ADD CONSTRAINT IF NOT EXISTS c2 CHECK (y>0);\n" +
		"DO $$\nBEGIN\n  NULL;\nEND"

	result := lint.Validate(source.New(sql))

	require.Len(t, result.Errors, 3)
	assert.Equal(t, 1, result.Errors[0].Pos.Line)
	assert.Equal(t, 2, result.Errors[1].Pos.Line)
	assert.Equal(t, 3, result.Errors[2].Pos.Line)
	assert.Equal(t, "PG02", result.Errors[2].RuleID)
}

func TestValidateIsDeterministic(t *testing.T) {
	sql := "DO $$\nBEGIN\nEND\nCREATE OR REPLACE FUNCTION f() RETURNS int AS BEGIN RETURN 1; END;"
	doc := source.New(sql)

	first := lint.Validate(doc)
	second := lint.Validate(doc)

	assert.Equal(t, first, second)
}

func TestAnalyzerDisabledRule(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Disable("PG01")

	result := lint.NewAnalyzer(cfg).Validate(source.New("ALTER TABLE t ADD CONSTRAINT IF NOT EXISTS ck CHECK (x>0);"))

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestAnalyzerSeverityOverride(t *testing.T) {
	t.Run("warning promoted to error", func(t *testing.T) {
		cfg := lint.NewConfig()
		cfg.SetSeverity("PG03", lint.SeverityError)

		result := lint.NewAnalyzer(cfg).Validate(source.New("CREATE OR REPLACE FUNCTION f() RETURNS int AS BEGIN RETURN 1; END;"))

		require.Len(t, result.Errors, 1)
		assert.Equal(t, "PG03", result.Errors[0].RuleID)
		assert.Empty(t, result.Warnings)
	})

	t.Run("error demoted to warning", func(t *testing.T) {
		cfg := lint.NewConfig()
		cfg.SetSeverity("PG01", lint.SeverityWarning)

		result := lint.NewAnalyzer(cfg).Validate(source.New("ALTER TABLE t ADD CONSTRAINT IF NOT EXISTS ck CHECK (x>0);"))

		assert.Empty(t, result.Errors)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "PG01", result.Warnings[0].RuleID)
	})
}

func TestAnalyzerRuleOptions(t *testing.T) {
	// With a wide enough window the delimiter on a late line is found.
	sql := "CREATE OR REPLACE FUNCTION f() RETURNS int AS\n" +
		"\n\n\n\n\n\n\n\n\n\n\n" + // blank lines push $$ to line 13, past the default window
		"$$ BEGIN RETURN 1; END $$ LANGUAGE plpgsql;"

	defaultResult := lint.Validate(source.New(sql))
	require.Len(t, defaultResult.Warnings, 1, "delimiter beyond default window should warn")

	cfg := lint.NewConfig()
	cfg.SetRuleOptions("PG03", map[string]any{"window_lines": 20})
	widened := lint.NewAnalyzer(cfg).Validate(source.New(sql))
	assert.Empty(t, widened.Warnings)
}

func TestRegistryContainsAllRules(t *testing.T) {
	all := lint.All()
	require.GreaterOrEqual(t, len(all), 3)

	// Sorted by ID, so the check order is fixed
	var ids []string
	for _, rule := range all {
		ids = append(ids, rule.ID)
	}
	assert.IsNonDecreasing(t, ids)

	for _, id := range []string{"PG01", "PG02", "PG03"} {
		rule, ok := lint.ByID(id)
		require.True(t, ok, "rule %s should be registered", id)
		assert.Equal(t, id, rule.ID)
		assert.NotEmpty(t, rule.Description)
		assert.NotNil(t, rule.Check)
	}
}
