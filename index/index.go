package index

import (
	"math"
	"sort"

	"github.com/poiesic/relevo/core"
)

// DocumentVector is the term vector derived from one note. It is created
// during an index build, replaced wholesale on rebuild, and never mutated in
// place.
type DocumentVector struct {
	NoteID core.ID

	// TermFreqs maps term to raw occurrence count across all fields.
	TermFreqs map[string]int

	// Weights maps term to normalized frequency: raw count divided by the
	// count of the note's most frequent term.
	Weights map[string]float64

	// Magnitude is the Euclidean norm of Weights, precomputed for cosine
	// similarity.
	Magnitude float64

	// Per-field token lists, retained for field-weighted scoring.
	TitleTokens   []string
	ContentTokens []string
	TagTokens     []string

	// TokenCount is the total number of tokens across all fields.
	TokenCount int
}

// Index is the corpus-level search structure.
type Index struct {
	// DocCount is the number of notes the index was built from.
	DocCount int

	// DocFreqs maps term to the number of notes containing it.
	DocFreqs map[string]int

	// IDF caches ln(DocCount/df) per term.
	IDF map[string]float64

	// Vectors maps note ID to its document vector.
	Vectors map[core.ID]*DocumentVector
}

// Fresh reports whether the index can be trusted for a search over a
// snapshot of docCount notes. The internal invariant DocCount ==
// len(Vectors) is checked as well; any mismatch forces a rebuild.
func (idx *Index) Fresh(docCount int) bool {
	if idx == nil {
		return false
	}
	return idx.DocCount == docCount && len(idx.Vectors) == idx.DocCount
}

// Cosine returns the cosine similarity of two document vectors:
// dot(a,b) / (|a| * |b|). A zero-magnitude vector never matches anything;
// the division is short-circuited to 0.
func Cosine(a, b *DocumentVector) float64 {
	if a == nil || b == nil || a.Magnitude == 0 || b.Magnitude == 0 {
		return 0
	}

	// Iterate the smaller vector
	small, large := a, b
	if len(b.Weights) < len(a.Weights) {
		small, large = b, a
	}

	var dot float64
	for term, w := range small.Weights {
		if other, ok := large.Weights[term]; ok {
			dot += w * other
		}
	}
	return dot / (a.Magnitude * b.Magnitude)
}

// Stats summarizes the indexed corpus. topTermCount terms with the highest
// document frequency are reported; ties break lexicographically so the
// output is deterministic.
func (idx *Index) Stats(topTermCount int) core.IndexStats {
	if idx == nil {
		return core.IndexStats{}
	}
	if topTermCount < 0 {
		topTermCount = 0
	}

	stats := core.IndexStats{
		TotalDocuments: idx.DocCount,
		VocabularySize: len(idx.DocFreqs),
	}

	if idx.DocCount > 0 {
		var total int
		for _, vec := range idx.Vectors {
			total += vec.TokenCount
		}
		stats.AverageDocumentLength = float64(total) / float64(idx.DocCount)
	}

	terms := make([]core.TermCount, 0, len(idx.DocFreqs))
	for term, count := range idx.DocFreqs {
		terms = append(terms, core.TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > topTermCount {
		terms = terms[:topTermCount]
	}
	stats.TopTerms = terms

	return stats
}

// magnitude computes the Euclidean norm of a weight map.
func magnitude(weights map[string]float64) float64 {
	var sum float64
	for _, w := range weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}
