package search

import (
	"sort"
	"strings"

	"github.com/docsift/docsift/core"
)

// SortKey selects the ordering of a filtered result page.
type SortKey string

const (
	// SortByScore orders by relevance score, highest first.
	SortByScore SortKey = "score"
	// SortByDate orders by document date, newest first. Applied only when
	// every surviving document carries a date; otherwise sorting is skipped
	// and the filtered order is preserved.
	SortByDate SortKey = "date"
)

// PageOptions controls filtering, ordering and pagination of a result page.
// The zero value is not usable; use DefaultPageOptions.
type PageOptions struct {
	Page     int
	PerPage  int
	SortBy   SortKey
	MinScore float64
}

// DefaultPageOptions returns the first page of ten results sorted by score
// with no minimum score.
func DefaultPageOptions() PageOptions {
	return PageOptions{Page: 1, PerPage: 10, SortBy: SortByScore}
}

// PageItem is one document on a result page with its pipeline score.
type PageItem struct {
	Document core.Document
	Score    float64
}

// Page is one window of a filtered, sorted result set. TotalResults and
// TotalPages describe the full filtered set, not the window.
type Page struct {
	Items        []PageItem
	Page         int
	PerPage      int
	TotalResults int
	TotalPages   int
}

// FilterSortPaginate scores documents by coarse substring matching, drops
// those under MinScore, sorts, and returns the requested page. The scorer is
// intentionally cruder than the search strategies: each term occurrence
// counts double in the title and single in the body, with no normalization
// by length. A page beyond the filtered range yields an empty Items slice
// with accurate totals.
func FilterSortPaginate(docs []core.Document, terms []string, opts PageOptions) (*Page, error) {
	if opts.Page < 1 {
		return nil, ErrInvalidPage
	}
	if opts.PerPage < 1 {
		return nil, ErrInvalidPerPage
	}
	switch opts.SortBy {
	case "", SortByScore, SortByDate:
	default:
		return nil, ErrInvalidSortKey
	}

	filtered := make([]PageItem, 0, len(docs))
	for _, doc := range docs {
		score := substringScore(doc, terms)
		if score < opts.MinScore {
			continue
		}
		filtered = append(filtered, PageItem{Document: doc, Score: score})
	}

	switch opts.SortBy {
	case SortByDate:
		// Date sort requires every survivor to carry a date; otherwise the
		// filtered order stands.
		if allDated(filtered) {
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].Document.Date > filtered[j].Document.Date
			})
		}
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Score > filtered[j].Score
		})
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + opts.PerPage - 1) / opts.PerPage
	}

	start := (opts.Page - 1) * opts.PerPage
	end := start + opts.PerPage
	items := []PageItem{}
	if start < total {
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return &Page{
		Items:        items,
		Page:         opts.Page,
		PerPage:      opts.PerPage,
		TotalResults: total,
		TotalPages:   totalPages,
	}, nil
}

// substringScore counts raw case-insensitive substring occurrences of the
// terms, weighting title matches double. Empty terms are skipped.
func substringScore(doc core.Document, terms []string) float64 {
	title := strings.ToLower(doc.Title)
	body := strings.ToLower(doc.Text)

	score := 0.0
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		score += float64(strings.Count(title, t)*2 + strings.Count(body, t))
	}
	return score
}

func allDated(items []PageItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Document.Date == "" {
			return false
		}
	}
	return true
}
