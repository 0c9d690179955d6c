package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/ingest"
)

func exportFixture() []core.ScoredResult {
	return []core.ScoredResult{
		{
			Document: core.Document{
				ID:    "d1",
				Title: "Intro to Data Mining",
				Text:  "Patterns in large datasets.",
				Tags:  []string{"data", "mining"},
			},
			Score:     0.8,
			MatchType: core.MatchRankedRelevance,
		},
		{
			Document:  core.Document{ID: "d2", Title: "Cooking", Text: "Pasta recipes."},
			Score:     0.25,
			MatchType: core.MatchRankedRelevance,
		},
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, exportFixture()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "d1", decoded[0]["id"])
	assert.Equal(t, "Intro to Data Mining", decoded[0]["title"])
	assert.Equal(t, 0.8, decoded[0]["score"])
	assert.Equal(t, "ranked_relevance", decoded[0]["match_type"])
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, exportFixture()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,title,content,tags,score,match_type", lines[0])
	assert.Contains(t, lines[1], "d1")
	assert.Contains(t, lines[1], `"data,mining"`)
	assert.Contains(t, lines[2], "0.25")
}

func TestWrite_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXML, exportFixture()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xmlHeaderPrefix))
	assert.Contains(t, out, `<document id="d1">`)
	assert.Contains(t, out, "<title>Intro to Data Mining</title>")
	assert.Contains(t, out, "<tag>mining</tag>")

	// Round trip through the ingest reader: score fields are ignored there
	// but the document payload must survive.
	docs, err := ingest.ReadXML(strings.NewReader(out), nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d1", docs[0].ID)
	assert.Equal(t, "Patterns in large datasets.", docs[0].Text)
}

const xmlHeaderPrefix = "<?xml"

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "yaml", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("by extension", func(t *testing.T) {
		path := filepath.Join(dir, "results.json")
		require.NoError(t, WriteFile(path, exportFixture()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"id": "d1"`)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := WriteFile(filepath.Join(dir, "results.txt"), nil)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
