package search

import "github.com/poiesic/relevo/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterTokenize(queryTokens []string)
	FuzzyFallback(query string)
	ScoredHit(result *core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterTokenize(_ []string)          {}
func (n *noopMonitor) FuzzyFallback(_ string)            {}
func (n *noopMonitor) ScoredHit(_ *core.SearchResult)    {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)     {}
