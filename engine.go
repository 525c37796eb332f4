// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package relevo is a client-side relevance search engine for note
// workspaces with mixed Japanese and English content.
//
// An Engine owns the active vector-space index and wires the tokenizer,
// index builder, and searcher together. Notes are supplied as snapshots on
// every call; the engine never fetches or persists them. The index lives
// only in memory and is rebuilt, never mutated: each rebuild constructs a
// complete new index off to the side and swaps the reference atomically, so
// readers never observe partial state.
package relevo

import (
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/index"
	"github.com/poiesic/relevo/search"
	"github.com/poiesic/relevo/tokenizer"
)

// Engine is the search engine facade. It is safe for concurrent use: the
// only shared mutable state is the active index reference, which is swapped
// atomically.
type Engine struct {
	tokenizer *tokenizer.Tokenizer
	builder   *index.Builder
	searcher  *search.Searcher
	active    atomic.Pointer[index.Index]
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	logger   *slog.Logger
	weights  *search.Weights
	poolSize int
	bigrams  bool
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithWeights overrides the default scoring weights.
func WithWeights(weights search.Weights) EngineOption {
	return func(o *engineOptions) {
		o.weights = &weights
	}
}

// WithPoolSize enables parallel index builds on a worker pool of the given
// size. Default is inline, single-goroutine builds.
func WithPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// WithCJKBigrams enables or disables CJK bigram emission in the tokenizer.
// Default is enabled.
func WithCJKBigrams(enabled bool) EngineOption {
	return func(o *engineOptions) {
		o.bigrams = enabled
	}
}

// NewEngine creates a new search engine.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		logger:  slog.Default(),
		bigrams: true,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	tok, err := tokenizer.New(
		tokenizer.WithLogger(options.logger),
		tokenizer.WithCJKBigrams(options.bigrams),
	)
	if err != nil {
		return nil, err
	}

	builderOpts := []index.Option{index.WithLogger(options.logger)}
	if options.poolSize > 0 {
		builderOpts = append(builderOpts, index.WithPoolSize(options.poolSize))
	}
	builder, err := index.NewBuilder(tok, builderOpts...)
	if err != nil {
		return nil, err
	}

	searcherOpts := []search.Option{search.WithLogger(options.logger)}
	if options.weights != nil {
		searcherOpts = append(searcherOpts, search.WithWeights(*options.weights))
	}
	searcher, err := search.NewSearcher(tok, builder, searcherOpts...)
	if err != nil {
		builder.Close()
		return nil, err
	}

	return &Engine{
		tokenizer: tok,
		builder:   builder,
		searcher:  searcher,
		logger:    options.logger,
	}, nil
}

// Close releases engine resources.
func (e *Engine) Close() error {
	return e.builder.Close()
}

// Build replaces the active index with a full rebuild over the supplied
// snapshot. The new index is constructed completely before the swap.
func (e *Engine) Build(notes []*core.Note) {
	e.active.Store(e.builder.Build(notes))
}

// Search finds notes matching the query, ordered per the options.
//
// If no index exists yet, or the active index was built from a different
// number of notes than supplied, the engine rebuilds implicitly before
// scoring. Count equality is the only staleness signal: callers that edit a
// note's text in place without changing the corpus size must call Build
// explicitly. Snapshots with duplicate IDs collapse to one vector per ID and
// therefore rebuild on every call; deduplicate before searching.
func (e *Engine) Search(query string, notes []*core.Note, opts *core.SearchOptions) []*core.SearchResult {
	return e.SearchWithMonitor(query, notes, opts, nil)
}

// SearchWithMonitor is Search with observation hooks.
func (e *Engine) SearchWithMonitor(query string, notes []*core.Note, opts *core.SearchOptions, monitor search.SearchMonitor) []*core.SearchResult {
	idx := e.ensureIndex(notes)
	return e.searcher.SearchWithMonitor(idx, notes, query, opts, monitor)
}

// FindSimilar returns up to limit notes similar to the given note, ranked
// by cosine similarity. Default limit is 10.
func (e *Engine) FindSimilar(noteID core.ID, notes []*core.Note, limit int) []*core.SearchResult {
	idx := e.ensureIndex(notes)
	return e.searcher.FindSimilar(idx, notes, noteID, search.DefaultSimilarityThreshold, limit)
}

// Autocomplete returns completion candidates for a partial query.
// Default limit is 5.
func (e *Engine) Autocomplete(partial string, notes []*core.Note, limit int) []string {
	return e.searcher.Autocomplete(notes, partial, limit)
}

// Stats summarizes the indexed corpus, reporting the ten most frequent
// terms.
func (e *Engine) Stats(notes []*core.Note) core.IndexStats {
	idx := e.ensureIndex(notes)
	return idx.Stats(10)
}

// ensureIndex returns the active index, rebuilding first when the snapshot
// size disagrees with it or no build has happened yet. Nil entries are not
// counted; the builder skips them, so they must not skew the comparison.
func (e *Engine) ensureIndex(notes []*core.Note) *index.Index {
	count := 0
	for _, note := range notes {
		if note != nil {
			count++
		}
	}

	idx := e.active.Load()
	if idx.Fresh(count) {
		return idx
	}
	e.logger.Debug("index stale, rebuilding", "documents", count)
	idx = e.builder.Build(notes)
	e.active.Store(idx)
	return idx
}
