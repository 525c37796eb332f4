package search

import "time"

// Weights is the named weighting configuration for the relevance scorer.
// Historically these constants were scattered as literals across several
// diverging scorer implementations; they live here, in one place, so every
// call site scores identically.
type Weights struct {
	// Title multiplies the fraction of query tokens found in the title.
	Title float64

	// Tag multiplies the fraction of query tokens found in the tags.
	Tag float64

	// Content multiplies the fraction of query tokens found in the body.
	Content float64

	// RecencyBonus is the boost at zero age, decaying linearly to zero at
	// RecencyWindow since the last update.
	RecencyBonus float64

	// RecencyWindow is the age beyond which no recency boost applies.
	RecencyWindow time.Duration

	// MinScore is the exclusion threshold for the main scoring path. It is a
	// small epsilon rather than zero so floating noise cannot admit
	// near-zero matches.
	MinScore float64
}

// DefaultWeights returns the canonical weighting configuration.
func DefaultWeights() Weights {
	return Weights{
		Title:         3.0,
		Tag:           2.0,
		Content:       1.0,
		RecencyBonus:  0.1,
		RecencyWindow: 30 * 24 * time.Hour,
		MinScore:      0.01,
	}
}

// Engine-wide defaults for limits and thresholds.
const (
	// DefaultLimit caps the number of search results.
	DefaultLimit = 50

	// DefaultSimilarLimit caps the number of more-like-this results.
	DefaultSimilarLimit = 10

	// DefaultSimilarityThreshold drops more-like-this results below this
	// cosine similarity.
	DefaultSimilarityThreshold = 0.1

	// DefaultAutocompleteLimit caps autocomplete candidates.
	DefaultAutocompleteLimit = 5

	// fuzzyThreshold is the exclusion threshold for the fuzzy fallback
	// path. Its scale differs in kind from MinScore: fuzzy scores are flat
	// per-signal bonuses, not weighted sums.
	fuzzyThreshold = 0.1
)
