package search

import (
	"strings"

	"github.com/poiesic/relevo/core"
)

// Autocomplete returns distinct completion candidates for a partial query:
// case-insensitive prefix matches against tokenized note titles and raw
// tags, in first-seen corpus order. Candidates are not ranked; the list is
// capped at limit.
func (s *Searcher) Autocomplete(notes []*core.Note, partial string, limit int) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultAutocompleteLimit
	}

	seen := make(map[string]bool)
	candidates := make([]string, 0, limit)
	add := func(candidate string) bool {
		key := strings.ToLower(candidate)
		if seen[key] || !strings.HasPrefix(key, partial) {
			return len(candidates) < limit
		}
		seen[key] = true
		candidates = append(candidates, candidate)
		return len(candidates) < limit
	}

	for _, note := range notes {
		if note == nil {
			continue
		}
		for _, token := range s.tokenizer.FilteredTokens(note.Title) {
			if !add(token) {
				return candidates
			}
		}
		for _, tag := range note.Tags {
			if !add(tag) {
				return candidates
			}
		}
	}
	return candidates
}
