package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRulesCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRulesCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"group", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesList(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "markdown")

	require.NoError(t, err)
	assert.Contains(t, out, "# Check Rules")
	for _, id := range []string{"PG01", "PG02", "PG03"} {
		assert.Contains(t, out, id)
	}
}

func TestRulesListGroupFilter(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "markdown", "--group", "structure")

	require.NoError(t, err)
	assert.Contains(t, out, "PG02")
	assert.Contains(t, out, "PG03")
	assert.NotContains(t, out, "PG01")
}

func TestRulesListJSON(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "json")

	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, len(result.Rules), result.Count)
	assert.GreaterOrEqual(t, result.Count, 3)
	assert.Equal(t, "PG01", result.Rules[0].ID, "rules should be sorted by ID")
}

func TestRulesShow(t *testing.T) {
	out, err := runRulesCommand(t, "PG02", "--format", "markdown")

	require.NoError(t, err)
	assert.Contains(t, out, "PG02")
	assert.Contains(t, out, "## Bad Example")
	assert.Contains(t, out, "## Good Example")
}

func TestRulesShowUnknown(t *testing.T) {
	_, err := runRulesCommand(t, "PG99")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "PG99" not found`)
}
