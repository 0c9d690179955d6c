package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docsift/docsift/core"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
)

// ErrUnsupportedFormat indicates a format with no writer.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// jsonResult is the JSON export layout for one result.
type jsonResult struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Score     float64  `json:"score"`
	MatchType string   `json:"match_type"`
}

// xmlResult is the XML export layout for one result.
type xmlResult struct {
	XMLName   xml.Name `xml:"document"`
	ID        string   `xml:"id,attr"`
	Title     string   `xml:"title"`
	Content   string   `xml:"content"`
	Tags      []string `xml:"tags>tag,omitempty"`
	Score     float64  `xml:"score"`
	MatchType string   `xml:"match_type"`
}

type xmlResultSet struct {
	XMLName xml.Name    `xml:"search_results"`
	Results []xmlResult `xml:"document"`
}

// Write encodes scored results to w in the given format.
func Write(w io.Writer, format Format, results []core.ScoredResult) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatCSV:
		return writeCSV(w, results)
	case FormatXML:
		return writeXML(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile encodes scored results to a file, selecting the format from the
// file extension (.json, .csv or .xml).
func WriteFile(path string, results []core.ScoredResult) error {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".csv":
		format = FormatCSV
	case ".xml":
		format = FormatXML
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, format, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, results []core.ScoredResult) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		out = append(out, jsonResult{
			ID:        r.Document.ID,
			Title:     r.Document.Title,
			Content:   r.Document.Text,
			Tags:      r.Document.Tags,
			Score:     r.Score,
			MatchType: string(r.MatchType),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, results []core.ScoredResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "content", "tags", "score", "match_type"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Document.ID,
			r.Document.Title,
			r.Document.Text,
			strings.Join(r.Document.Tags, ","),
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			string(r.MatchType),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXML(w io.Writer, results []core.ScoredResult) error {
	set := xmlResultSet{Results: make([]xmlResult, 0, len(results))}
	for _, r := range results {
		set.Results = append(set.Results, xmlResult{
			ID:        r.Document.ID,
			Title:     r.Document.Title,
			Content:   r.Document.Text,
			Tags:      r.Document.Tags,
			Score:     r.Score,
			MatchType: string(r.MatchType),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
