package core

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint is a content-based identity for a document, used to detect
// duplicates during bulk import. Identical content produces an identical
// fingerprint.
type Fingerprint uint64

// FingerprintOf computes the fingerprint of a document from its identifier,
// title and body text using BLAKE2b hashing.
func FingerprintOf(doc *Document) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(doc.ID))
	h.Write([]byte{0})
	h.Write([]byte(doc.Title))
	h.Write([]byte{0})
	h.Write([]byte(doc.Text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// Document is a searchable text document. Documents are owned by the caller
// and referenced by the search engines; the engines never mutate them.
type Document struct {
	ID    string
	Title string
	Text  string
	Tags  []string // Optional classification tags
	Date  string   // Optional date, compared lexicographically when sorting
}

// SearchableText returns the text the search strategies index and score:
// the title followed by the body.
func (d *Document) SearchableText() string {
	return d.Title + " " + d.Text
}

// MatchType tags a scored result with the strategy that produced it.
type MatchType string

const (
	// MatchBooleanExact marks results of exact boolean AND matching.
	MatchBooleanExact MatchType = "boolean_exact"
	// MatchRankedRelevance marks results of term-frequency ranking.
	MatchRankedRelevance MatchType = "ranked_relevance"
	// MatchSemanticSimilarity marks results of semantic search.
	MatchSemanticSimilarity MatchType = "semantic_similarity"
)

// ScoredResult pairs a document with a relevance score. Results are created
// fresh on every search call and never mutated afterwards.
//
// Boolean matching produces scores of exactly 1.0; ranked and semantic
// matching produce non-negative real scores.
type ScoredResult struct {
	Document  Document
	Score     float64
	MatchType MatchType
}

// UserProfile holds per-user bookkeeping: identity, preferences and the
// queries the user has issued.
type UserProfile struct {
	UserID        string
	Name          string
	Address       string
	Country       string
	Age           int
	Preferences   map[string]string
	SearchHistory []string
}

// Label returns the "Name - Address" display form. Comma and whitespace
// noise inside either field is collapsed to single spaces.
func (p *UserProfile) Label() string {
	return collapseField(p.Name) + " - " + collapseField(p.Address)
}

// Summary returns the "Name, Age (Country)" display form.
func (p *UserProfile) Summary() string {
	return collapseField(p.Name) + ", " + strconv.Itoa(p.Age) + " (" + collapseField(p.Country) + ")"
}

func collapseField(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Order is a food order placed by a user against a menu.
type Order struct {
	Seq      uint64 // Assigned by storage on append
	UserID   string
	Items    []string
	PlacedAt time.Time
}
