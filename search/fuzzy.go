package search

import (
	"strings"

	"github.com/poiesic/relevo/core"
	"github.com/xrash/smetrics"
)

// Fuzzy fallback scoring bonuses. These are flat per-signal additions, not
// weighted sums; the path is deliberately separate from the main scorer.
const (
	fuzzyExactBonus     = 1.0
	fuzzyWordBonus      = 0.5
	fuzzyNearMissBonus  = 0.3
	fuzzyDistanceFactor = 0.3
)

// fuzzySearch handles queries the tokenizer cannot serve: single characters
// and text that tokenizes to nothing. It scores by raw substring
// containment and edit-distance near-misses instead of TF-IDF.
func (s *Searcher) fuzzySearch(notes []*core.Note, query string) []*core.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []*core.SearchResult{}
	}
	queryWords := strings.Fields(query)

	results := make([]*core.SearchResult, 0, len(notes))
	for _, note := range notes {
		if note == nil {
			continue
		}
		text := strings.ToLower(note.SearchText())

		var score float64
		if strings.Contains(text, query) {
			score += fuzzyExactBonus
		}
		for _, word := range queryWords {
			if strings.Contains(text, word) {
				score += fuzzyWordBonus
			} else if hasNearMiss(text, word) {
				score += fuzzyNearMissBonus
			}
		}

		if score < fuzzyThreshold {
			continue
		}
		results = append(results, &core.SearchResult{
			Note:       note,
			Score:      score,
			Highlights: fuzzyHighlight(note, query),
		})
	}
	return results
}

// hasNearMiss reports whether any word in the text is within edit distance
// of the query word. The allowed distance is proportional to the word
// length, with a minimum of one edit.
func hasNearMiss(text, queryWord string) bool {
	maxDistance := int(fuzzyDistanceFactor * float64(len([]rune(queryWord))))
	if maxDistance < 1 {
		maxDistance = 1
	}
	for _, word := range strings.Fields(text) {
		if editDistance(word, queryWord) <= maxDistance {
			return true
		}
	}
	return false
}

// editDistance is the Levenshtein distance with unit costs.
func editDistance(a, b string) int {
	return smetrics.WagnerFischer(a, b, 1, 1, 1)
}

// fuzzyHighlight extracts a snippet around the first raw occurrence of the
// query, if any.
func fuzzyHighlight(note *core.Note, query string) []string {
	snippet := snippetAround(note.Content, query)
	if snippet == "" {
		snippet = snippetAround(note.Title, query)
	}
	if snippet == "" {
		return nil
	}
	return []string{snippet}
}
