// Package report aggregates system statistics and renders them as ASCII
// tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/search"
	"github.com/docsift/docsift/textproc"
)

// DocumentStats summarizes a document collection.
type DocumentStats struct {
	Total     int
	Tagged    int // documents with at least one tag
	Dated     int // documents with a date
	AvgTokens float64
}

// BuildDocumentStats aggregates a document collection.
func BuildDocumentStats(docs []core.Document) DocumentStats {
	stats := DocumentStats{Total: len(docs)}
	if len(docs) == 0 {
		return stats
	}

	tokens := 0
	for i := range docs {
		if len(docs[i].Tags) > 0 {
			stats.Tagged++
		}
		if docs[i].Date != "" {
			stats.Dated++
		}
		tokens += len(textproc.Tokenize(textproc.Normalize(docs[i].SearchableText())))
	}
	stats.AvgTokens = float64(tokens) / float64(len(docs))
	return stats
}

// EngineStats summarizes one search engine.
type EngineStats struct {
	Name       string
	Strategy   string
	Documents  int
	Searches   int
	IndexTerms int
}

// BuildEngineStats aggregates an engine's counters.
func BuildEngineStats(engine *search.Engine) EngineStats {
	stats := EngineStats{
		Name:      engine.Name(),
		Strategy:  engine.StrategyName(),
		Documents: engine.DocumentCount(),
		Searches:  engine.SearchCount(),
	}
	if stats.Documents > 0 {
		stats.IndexTerms = engine.IndexStats().TermCount
	}
	return stats
}

// OrderStats summarizes the order log.
type OrderStats struct {
	Orders     int
	ItemCounts map[string]int
}

// BuildOrderStats aggregates order history.
func BuildOrderStats(orders []*core.Order) OrderStats {
	stats := OrderStats{
		Orders:     len(orders),
		ItemCounts: make(map[string]int),
	}
	for _, order := range orders {
		for _, item := range order.Items {
			stats.ItemCounts[item]++
		}
	}
	return stats
}

// RenderEngines writes an engine overview table.
func RenderEngines(w io.Writer, engines []*search.Engine) error {
	rows := make([][]string, 0, len(engines))
	for _, engine := range engines {
		s := BuildEngineStats(engine)
		rows = append(rows, []string{
			s.Name,
			s.Strategy,
			strconv.Itoa(s.Documents),
			strconv.Itoa(s.Searches),
			strconv.Itoa(s.IndexTerms),
		})
	}
	return renderTable(w, []string{"Engine", "Strategy", "Documents", "Searches", "Index Terms"}, rows)
}

// RenderDocuments writes a document summary table.
func RenderDocuments(w io.Writer, docs []core.Document) error {
	s := BuildDocumentStats(docs)
	rows := [][]string{{
		strconv.Itoa(s.Total),
		strconv.Itoa(s.Tagged),
		strconv.Itoa(s.Dated),
		fmt.Sprintf("%.1f", s.AvgTokens),
	}}
	return renderTable(w, []string{"Documents", "Tagged", "Dated", "Avg Tokens"}, rows)
}

// RenderOrders writes an order summary table, items sorted by count
// descending and name ascending for ties.
func RenderOrders(w io.Writer, orders []*core.Order) error {
	s := BuildOrderStats(orders)

	type itemCount struct {
		item  string
		count int
	}
	counts := make([]itemCount, 0, len(s.ItemCounts))
	for item, count := range s.ItemCounts {
		counts = append(counts, itemCount{item, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].item < counts[j].item
	})

	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.item, strconv.Itoa(c.count)})
	}
	return renderTable(w, []string{"Item", "Ordered"}, rows)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
