package search

import (
	"log/slog"
	"time"

	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/index"
	"github.com/poiesic/relevo/tokenizer"
)

// Searcher scores and ranks notes against free-text queries.
// It is stateless with respect to the corpus: the index and note snapshot
// are passed into every call, so independent indices (per test, per
// workspace) never cross-contaminate.
type Searcher struct {
	tokenizer *tokenizer.Tokenizer
	builder   *index.Builder
	weights   Weights
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithWeights overrides the default weighting configuration.
func WithWeights(weights Weights) Option {
	return func(s *Searcher) error {
		s.weights = weights
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(tok *tokenizer.Tokenizer, builder *index.Builder, opts ...Option) (*Searcher, error) {
	if tok == nil {
		return nil, ErrTokenizerRequired
	}
	if builder == nil {
		return nil, ErrBuilderRequired
	}

	s := &Searcher{
		tokenizer: tok,
		builder:   builder,
		weights:   DefaultWeights(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Weights returns the active weighting configuration.
func (s *Searcher) Weights() Weights {
	return s.weights
}

// Search scores every indexed note against the query, applies filters, and
// returns ordered results. It is total: degenerate queries and options yield
// an empty result list, never an error.
func (s *Searcher) Search(idx *index.Index, notes []*core.Note, query string, opts *core.SearchOptions) []*core.SearchResult {
	return s.SearchWithMonitor(idx, notes, query, opts, nil)
}

// SearchWithMonitor is Search with observation hooks.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(idx *index.Index, notes []*core.Note, query string, opts *core.SearchOptions, monitor SearchMonitor) []*core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	options := s.normalizeOptions(opts)

	if query == "" {
		monitor.Finish(nil)
		return []*core.SearchResult{}
	}

	queryTokens, queryWeights := s.builder.VectorizeQuery(query)
	monitor.AfterTokenize(queryTokens)

	// Short or unparseable queries bypass TF-IDF entirely; the tokenizer
	// underperforms on single characters and novel terms.
	if len(queryTokens) == 0 || len([]rune(query)) == 1 {
		monitor.FuzzyFallback(query)
		results := s.fuzzySearch(notes, query)
		results = rank(results, options)
		monitor.Finish(results)
		return results
	}

	if idx == nil {
		monitor.Finish(nil)
		return []*core.SearchResult{}
	}

	now := time.Now()
	results := make([]*core.SearchResult, 0, len(notes))
	for _, note := range notes {
		if note == nil {
			continue
		}
		vec := idx.Vectors[note.Id]
		if vec == nil {
			continue
		}

		score, factors, matched := s.score(note, vec, idx, queryTokens, queryWeights, now)
		if !matched || score < options.MinScore {
			continue
		}

		result := &core.SearchResult{
			Note:       note,
			Score:      score,
			Factors:    factors,
			Highlights: highlights(note, queryTokens),
		}
		results = append(results, result)
		monitor.ScoredHit(result)
	}

	results = rank(results, options)
	monitor.Finish(results)
	return results
}

// score computes the relevance of one note: field-weighted match fractions,
// the TF-IDF term, and the recency boost. A note sharing no tokens with the
// query reports matched == false and is excluded before recency could admit
// it, for any MinScore >= 0.
func (s *Searcher) score(note *core.Note, vec *index.DocumentVector, idx *index.Index, queryTokens []string, queryWeights map[string]float64, now time.Time) (float64, core.FactorBreakdown, bool) {
	var factors core.FactorBreakdown

	if !overlaps(queryWeights, vec.TermFreqs) {
		return 0, factors, false
	}

	factors.TitleMatch = matchFraction(queryWeights, vec.TitleTokens) * s.weights.Title
	factors.TagMatch = matchFraction(queryWeights, vec.TagTokens) * s.weights.Tag
	factors.ContentMatch = matchFraction(queryWeights, vec.ContentTokens) * s.weights.Content

	for term, queryWeight := range queryWeights {
		factors.TFIDF += queryWeight * vec.Weights[term] * idx.IDF[term]
	}

	factors.Recency = s.recencyBoost(note.UpdatedAt, now)

	total := factors.TitleMatch + factors.TagMatch + factors.ContentMatch +
		factors.TFIDF + factors.Recency
	return total, factors, true
}

// recencyBoost decays linearly from RecencyBonus at zero age to zero at
// RecencyWindow since the last update.
func (s *Searcher) recencyBoost(updatedAt time.Time, now time.Time) float64 {
	if s.weights.RecencyWindow <= 0 || updatedAt.IsZero() {
		return 0
	}
	age := now.Sub(updatedAt)
	if age < 0 {
		age = 0
	}
	if age >= s.weights.RecencyWindow {
		return 0
	}
	remaining := 1 - float64(age)/float64(s.weights.RecencyWindow)
	return s.weights.RecencyBonus * remaining
}

// overlaps reports whether any query term occurs in the document.
func overlaps(queryWeights map[string]float64, termFreqs map[string]int) bool {
	for term := range queryWeights {
		if termFreqs[term] > 0 {
			return true
		}
	}
	return false
}

// matchFraction returns the fraction of distinct query terms present in the
// field's token list.
func matchFraction(queryWeights map[string]float64, fieldTokens []string) float64 {
	if len(queryWeights) == 0 || len(fieldTokens) == 0 {
		return 0
	}
	fieldSet := make(map[string]bool, len(fieldTokens))
	for _, token := range fieldTokens {
		fieldSet[token] = true
	}
	matched := 0
	for term := range queryWeights {
		if fieldSet[term] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryWeights))
}

// normalizeOptions clamps misconfigured options to sane values, preserving
// the total-function contract. Unset fields fall back to the searcher's
// configured weights, not the package defaults.
func (s *Searcher) normalizeOptions(opts *core.SearchOptions) core.SearchOptions {
	options := core.SearchOptions{
		Limit:    DefaultLimit,
		MinScore: s.weights.MinScore,
		SortBy:   core.SortByRelevance,
	}
	if opts != nil {
		options = *opts
		if options.Limit <= 0 {
			options.Limit = DefaultLimit
		}
		// Zero means unset; the configured epsilon keeps floating noise
		// from admitting near-zero matches.
		if options.MinScore <= 0 {
			options.MinScore = s.weights.MinScore
		}
	}
	return options
}
