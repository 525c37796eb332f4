package search

import (
	"sort"
	"strings"

	"github.com/poiesic/relevo/core"
)

// rank applies filters, sorts, and truncates. Sorting happens strictly
// before truncation; truncating first would break top-K correctness under
// filters.
func rank(results []*core.SearchResult, options core.SearchOptions) []*core.SearchResult {
	if options.Filters != nil {
		filtered := results[:0]
		for _, result := range results {
			if matchesFilters(result.Note, options.Filters) {
				filtered = append(filtered, result)
			}
		}
		results = filtered
	}

	switch options.SortBy {
	case core.SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Note.UpdatedAt.After(results[j].Note.UpdatedAt)
		})
	case core.SortByTitle:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].Note.Title) < strings.ToLower(results[j].Note.Title)
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}

	if len(results) > options.Limit {
		results = results[:options.Limit]
	}
	return results
}

// matchesFilters checks a note against every set filter field, AND-combined.
func matchesFilters(note *core.Note, filters *core.Filters) bool {
	if filters.Category != "" && note.Category != filters.Category {
		return false
	}
	if filters.Importance != core.ImportanceNone && note.Importance != filters.Importance {
		return false
	}
	if len(filters.Tags) > 0 && !tagsIntersect(note.Tags, filters.Tags) {
		return false
	}
	if !filters.CreatedAfter.IsZero() && note.CreatedAt.Before(filters.CreatedAfter) {
		return false
	}
	if !filters.CreatedBefore.IsZero() && note.CreatedAt.After(filters.CreatedBefore) {
		return false
	}
	if !filters.UpdatedAfter.IsZero() && note.UpdatedAt.Before(filters.UpdatedAfter) {
		return false
	}
	if !filters.UpdatedBefore.IsZero() && note.UpdatedAt.After(filters.UpdatedBefore) {
		return false
	}
	return true
}

func tagsIntersect(noteTags, filterTags []string) bool {
	if len(noteTags) == 0 {
		return false
	}
	set := make(map[string]bool, len(noteTags))
	for _, tag := range noteTags {
		set[strings.ToLower(tag)] = true
	}
	for _, tag := range filterTags {
		if set[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}
