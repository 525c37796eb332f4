package search

import (
	"sort"

	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/index"
)

// FindSimilar returns notes similar to the given note, ranked by cosine
// similarity of their precomputed vectors. The source note itself is
// excluded, results below threshold are dropped, and notes with empty
// vectors never match. Unknown note IDs yield an empty result list.
func (s *Searcher) FindSimilar(idx *index.Index, notes []*core.Note, noteID core.ID, threshold float64, limit int) []*core.SearchResult {
	if idx == nil {
		return []*core.SearchResult{}
	}
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	target := idx.Vectors[noteID]
	if target == nil {
		s.logger.Debug("findSimilar target not indexed", "noteID", noteID)
		return []*core.SearchResult{}
	}

	results := make([]*core.SearchResult, 0, len(notes))
	for _, note := range notes {
		if note == nil || note.Id == noteID {
			continue
		}
		vec := idx.Vectors[note.Id]
		similarity := index.Cosine(target, vec)
		if similarity < threshold {
			continue
		}
		results = append(results, &core.SearchResult{
			Note:  note,
			Score: similarity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
