package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Importance is the user-assigned priority level of a note.
type Importance int

const (
	// ImportanceNone means no importance was assigned.
	ImportanceNone Importance = iota
	// ImportanceLow marks a low-priority note.
	ImportanceLow
	// ImportanceNormal marks a normal-priority note.
	ImportanceNormal
	// ImportanceHigh marks a high-priority note.
	ImportanceHigh
)

// Note represents a single note in the workspace.
// The engine only ever reads snapshots of notes; it never mutates them and
// never fetches or persists documents on its own.
type Note struct {
	Id         ID
	Title      string
	Content    string
	Tags       []string
	Category   string
	Importance Importance
	CreatedAt  time.Time         // When the note was originally created
	UpdatedAt  time.Time         // When the note was last edited
	InsertedAt time.Time         // When the record was inserted into the database
	Metadata   map[string]string // Optional metadata (e.g., "workspace", "color")
}

// SortOrder selects how search results are ordered.
type SortOrder int

const (
	// SortByRelevance orders by score, highest first. The default.
	SortByRelevance SortOrder = iota
	// SortByDate orders by UpdatedAt, most recent first.
	SortByDate
	// SortByTitle orders by title, lexicographically ascending.
	SortByTitle
)

// Filters narrows a search to notes matching every set field.
// Zero-valued fields are ignored.
type Filters struct {
	Category      string
	Importance    Importance
	Tags          []string // matches notes sharing at least one tag
	CreatedAfter  time.Time
	CreatedBefore time.Time
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
}

// SearchOptions configures a single search call.
type SearchOptions struct {
	Filters  *Filters
	Limit    int     // maximum number of results, default 50
	MinScore float64 // exclusion threshold, default 0.01
	SortBy   SortOrder
}

// FactorBreakdown itemizes the components of a relevance score.
type FactorBreakdown struct {
	TitleMatch   float64
	ContentMatch float64
	TagMatch     float64
	TFIDF        float64
	Recency      float64
}

// SearchResult represents a search result with the matched note, its
// relevance score, the score breakdown, and highlight snippets.
// Results are created fresh per search call and never persisted.
type SearchResult struct {
	Note       *Note
	Score      float64
	Factors    FactorBreakdown
	Highlights []string
}

// IndexStats summarizes the indexed corpus.
type IndexStats struct {
	TotalDocuments        int
	VocabularySize        int
	AverageDocumentLength float64
	TopTerms              []TermCount
}

// TermCount pairs a term with its document frequency.
type TermCount struct {
	Term  string
	Count int
}

// SearchText returns the note's indexable text fields coalesced into one
// field-agnostic string. Missing fields contribute nothing.
func (n *Note) SearchText() string {
	text := n.Title
	if n.Content != "" {
		text += " " + n.Content
	}
	for _, tag := range n.Tags {
		if tag != "" {
			text += " " + tag
		}
	}
	return text
}
