package index

import (
	"log/slog"
	"math"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/tokenizer"
)

// Builder constructs an Index from a note snapshot.
// A Builder is safe for concurrent use; each Build call produces an
// independent Index.
type Builder struct {
	tokenizer *tokenizer.Tokenizer
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithPoolSize enables a worker pool of the given size for per-note
// vectorization. Without a pool, builds run inline on the calling goroutine.
// The external contract is identical either way: a fully constructed Index
// is returned and nothing is visible before that.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// NewBuilder creates a new index builder.
func NewBuilder(tok *tokenizer.Tokenizer, opts ...Option) (*Builder, error) {
	if tok == nil {
		return nil, ErrTokenizerRequired
	}

	b := &Builder{
		tokenizer: tok,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Close releases the worker pool, if any.
func (b *Builder) Close() error {
	if b.pool != nil {
		b.pool.Release()
	}
	return nil
}

// Build performs a full rebuild over the supplied snapshot and returns a new
// Index. It is total: a note whose text fields are all empty yields an empty
// vector and simply never matches a query.
func (b *Builder) Build(notes []*core.Note) *Index {
	idx := &Index{
		DocCount: len(notes),
		DocFreqs: make(map[string]int),
		IDF:      make(map[string]float64),
		Vectors:  make(map[core.ID]*DocumentVector, len(notes)),
	}

	vectors := make([]*DocumentVector, len(notes))
	if b.pool != nil {
		b.buildParallel(notes, vectors)
	} else {
		for i, note := range notes {
			vectors[i] = b.Vectorize(note)
		}
	}

	for _, vec := range vectors {
		if vec == nil {
			continue
		}
		idx.Vectors[vec.NoteID] = vec
		for term := range vec.TermFreqs {
			idx.DocFreqs[term]++
		}
	}

	// Count vectors, not input notes: duplicate IDs collapse to one vector
	// and the DocCount == len(Vectors) invariant must hold.
	idx.DocCount = len(idx.Vectors)

	for term, df := range idx.DocFreqs {
		idx.IDF[term] = math.Log(float64(idx.DocCount) / float64(df))
	}

	b.logger.Debug("index built",
		"documents", idx.DocCount,
		"vocabulary", len(idx.DocFreqs))

	return idx
}

// buildParallel fans per-note vectorization out over the worker pool.
// Results land in fixed slice positions, so no locking is needed.
func (b *Builder) buildParallel(notes []*core.Note, vectors []*DocumentVector) {
	var wg sync.WaitGroup
	for i, note := range notes {
		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			vectors[i] = b.Vectorize(note)
		})
		if err != nil {
			// Pool rejected the task; vectorize inline instead
			b.logger.Warn("worker pool submit failed, vectorizing inline", "err", err)
			vectors[i] = b.Vectorize(note)
			wg.Done()
		}
	}
	wg.Wait()
}

// Vectorize computes the document vector for a single note: all text fields
// in one field-agnostic bag for the base vector, with per-field token lists
// retained for field-weighted scoring. Term frequencies are normalized by
// the count of the note's most frequent term (max-frequency normalization),
// and the Euclidean magnitude of the normalized vector is precomputed.
func (b *Builder) Vectorize(note *core.Note) *DocumentVector {
	if note == nil {
		return nil
	}

	vec := &DocumentVector{
		NoteID:        note.Id,
		TitleTokens:   b.tokenizer.FilteredTokens(note.Title),
		ContentTokens: b.tokenizer.FilteredTokens(note.Content),
		TermFreqs:     make(map[string]int),
		Weights:       make(map[string]float64),
	}
	for _, tag := range note.Tags {
		vec.TagTokens = append(vec.TagTokens, b.tokenizer.FilteredTokens(tag)...)
	}

	maxFreq := 0
	count := func(tokens []string) {
		for _, token := range tokens {
			vec.TermFreqs[token]++
			if vec.TermFreqs[token] > maxFreq {
				maxFreq = vec.TermFreqs[token]
			}
			vec.TokenCount++
		}
	}
	count(vec.TitleTokens)
	count(vec.ContentTokens)
	count(vec.TagTokens)

	if maxFreq > 0 {
		for term, freq := range vec.TermFreqs {
			vec.Weights[term] = float64(freq) / float64(maxFreq)
		}
		vec.Magnitude = magnitude(vec.Weights)
	}

	return vec
}

// VectorizeQuery builds a normalized query vector from a query string using
// the same tokenizer and max-frequency normalization as note vectors, so
// query and document weights are directly comparable.
func (b *Builder) VectorizeQuery(query string) (tokens []string, weights map[string]float64) {
	tokens = b.tokenizer.FilteredTokens(query)
	weights = make(map[string]float64, len(tokens))

	freqs := make(map[string]int, len(tokens))
	maxFreq := 0
	for _, token := range tokens {
		freqs[token]++
		if freqs[token] > maxFreq {
			maxFreq = freqs[token]
		}
	}
	if maxFreq > 0 {
		for term, freq := range freqs {
			weights[term] = float64(freq) / float64(maxFreq)
		}
	}
	return tokens, weights
}
