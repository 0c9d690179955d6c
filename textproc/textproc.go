package textproc

import (
	"sort"
	"strings"
)

// punctuation characters stripped from token edges for comparison.
const punctuation = `.,!?;:"()[]{}`

// Normalize lowercases text, strips leading and trailing whitespace, and
// collapses interior whitespace runs to single spaces. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits normalized text into whitespace-delimited terms.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

// StripPunctuation removes leading and trailing punctuation from a word
// without altering interior characters, so "mining," becomes "mining" but
// "don't" keeps its apostrophe.
func StripPunctuation(word string) string {
	return strings.Trim(word, punctuation)
}

// CountTermOccurrences counts whitespace-delimited tokens equal to term
// after per-token punctuation stripping and case folding. Matching is
// whole-token only: "mining" does not match inside "miningly".
func CountTermOccurrences(text, term string) int {
	target := strings.ToLower(term)
	count := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if StripPunctuation(word) == target {
			count++
		}
	}
	return count
}

// Truncate cuts text to at most maxChars characters, backing up to the last
// word boundary when one exists within the window, and appends an ellipsis.
// Text already within the limit is returned unchanged.
func Truncate(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	cut := string(runes[:maxChars])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// Highlight wraps whole-token, case-insensitive matches of any term in
// pre/post markers. Longer terms are processed first so they are not
// shadowed by shorter ones. The matched token keeps its original casing,
// and punctuation adjacent to it stays outside the markers.
//
// Whitespace runs in the input are collapsed to single spaces.
func Highlight(text string, terms []string, pre, post string) string {
	words := strings.Fields(text)
	wrapped := make([]bool, len(words))

	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	for _, term := range sorted {
		target := strings.ToLower(term)
		if target == "" {
			continue
		}
		for i, word := range words {
			if wrapped[i] {
				continue
			}
			stripped := StripPunctuation(word)
			if !strings.EqualFold(stripped, target) {
				continue
			}
			lead := word[:strings.Index(word, stripped)]
			trail := word[len(lead)+len(stripped):]
			words[i] = lead + pre + stripped + post + trail
			wrapped[i] = true
		}
	}

	return strings.Join(words, " ")
}
