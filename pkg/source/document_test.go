package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgvet/pgvet/pkg/source"
)

func TestDocumentLines(t *testing.T) {
	doc := source.New("SELECT 1;\n\n-- comment\nSELECT 2;")

	assert.Equal(t, 4, doc.NumLines())
	assert.Equal(t, "SELECT 1;", doc.Line(1))
	assert.Equal(t, "", doc.Line(2))
	assert.Equal(t, "-- comment", doc.Line(3))
	assert.Equal(t, "SELECT 2;", doc.Line(4))
}

func TestDocumentLineOutOfRange(t *testing.T) {
	doc := source.New("SELECT 1;")

	assert.Equal(t, "", doc.Line(0))
	assert.Equal(t, "", doc.Line(2))
	assert.Equal(t, "", doc.Line(-1))
}

func TestDocumentEmpty(t *testing.T) {
	doc := source.New("")

	// strings.Split("") yields one empty line
	assert.Equal(t, 1, doc.NumLines())
	assert.Equal(t, "", doc.Line(1))
}

func TestStatementCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "single statement", text: "SELECT 1;", want: 2},
		{name: "empty document", text: "", want: 1},
		{name: "no terminator", text: "SELECT 1", want: 1},
		{name: "two statements", text: "SELECT 1;\nSELECT 2;", want: 3},
		{name: "semicolon in literal still counts", text: "SELECT 'a;b';", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, source.New(tt.text).StatementCount())
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1;\n"), 0644))

	doc, err := source.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", doc.Raw())
}

func TestReadFileMissing(t *testing.T) {
	doc, err := source.ReadFile(filepath.Join(t.TempDir(), "nope.sql"))

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "failed to read SQL file")
}
