package ingest

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsift/docsift/core"
)

// ReadCSV parses documents from CSV. The first row is a header and must name
// at least id, title and content columns; tags is optional and holds a
// comma-joined list. Rows missing required fields are skipped with a warning
// rather than failing the whole file.
func ReadCSV(r io.Reader, logger *slog.Logger) ([]core.Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "title", "content"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: no %q column", ErrMissingHeader, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var docs []core.Document
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed csv row", "line", line, "err", err)
			continue
		}

		doc := core.Document{
			ID:    field(row, "id"),
			Title: field(row, "title"),
			Text:  field(row, "content"),
			Tags:  splitTags(field(row, "tags")),
			Date:  field(row, "date"),
		}
		if err := core.ValidateDocument(&doc); err != nil {
			logger.Warn("skipping invalid csv row", "line", line, "err", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// xmlDocument mirrors the <document> element layout.
type xmlDocument struct {
	IDAttr  string   `xml:"id,attr"`
	IDElem  string   `xml:"id"`
	Title   string   `xml:"title"`
	Content string   `xml:"content"`
	Tags    []string `xml:"tags>tag"`
	Date    string   `xml:"date"`
}

type xmlDocumentSet struct {
	Documents []xmlDocument `xml:"document"`
}

// ReadXML parses documents from XML. The root element wraps <document>
// elements; the document ID may be an attribute or a child element. Invalid
// document elements are skipped with a warning.
func ReadXML(r io.Reader, logger *slog.Logger) ([]core.Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var set xmlDocumentSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("decoding xml: %w", err)
	}

	var docs []core.Document
	for i, elem := range set.Documents {
		id := elem.IDAttr
		if id == "" {
			id = elem.IDElem
		}
		doc := core.Document{
			ID:    id,
			Title: elem.Title,
			Text:  elem.Content,
			Tags:  elem.Tags,
			Date:  elem.Date,
		}
		if err := core.ValidateDocument(&doc); err != nil {
			logger.Warn("skipping invalid xml document element", "element", i, "err", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// jsonDocument mirrors the JSON document object layout.
type jsonDocument struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Date    string   `json:"date"`
}

// ReadJSON parses documents from a JSON array of objects. Invalid entries
// are skipped with a warning.
func ReadJSON(r io.Reader, logger *slog.Logger) ([]core.Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var entries []jsonDocument
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	var docs []core.Document
	for i, entry := range entries {
		doc := core.Document{
			ID:    entry.ID,
			Title: entry.Title,
			Text:  entry.Content,
			Tags:  entry.Tags,
			Date:  entry.Date,
		}
		if err := core.ValidateDocument(&doc); err != nil {
			logger.Warn("skipping invalid json document entry", "entry", i, "err", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ReadFile parses documents from a file, selecting the reader by extension
// (.csv, .xml or .json).
func ReadFile(path string, logger *slog.Logger) ([]core.Document, error) {
	var read func(io.Reader, *slog.Logger) ([]core.Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		read = ReadCSV
	case ".xml":
		read = ReadXML
	case ".json":
		read = ReadJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f, logger)
}

// splitTags splits a comma-joined tag field, dropping empty entries.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
