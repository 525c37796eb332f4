package relevo

import (
	"testing"
	"time"

	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngine(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func testNote(id core.ID, title, content string, tags ...string) *core.Note {
	return &core.Note{
		Id:        id,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine := newTestEngine(t)
		assert.NotNil(t, engine)
	})

	t.Run("with options", func(t *testing.T) {
		engine := newTestEngine(t,
			WithPoolSize(2),
			WithCJKBigrams(true),
			WithLogger(nil),
		)
		assert.NotNil(t, engine)
	})
}

func TestEngine_ConfiguredMinScore(t *testing.T) {
	weights := search.DefaultWeights()
	weights.MinScore = 100
	engine := newTestEngine(t, WithWeights(weights))

	notes := []*core.Note{testNote(1, "apple pie", "banana")}

	// The configured threshold applies when the caller leaves MinScore unset.
	assert.Empty(t, engine.Search("apple", notes, nil))
	assert.Len(t, engine.Search("apple", notes, &core.SearchOptions{MinScore: 0.01}), 1)
}

func TestEngine_SearchBuildsOnDemand(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{
		testNote(1, "apple pie", "banana"),
		testNote(2, "fruit", "I like apple very much"),
	}

	// No explicit Build call: the first search constructs the index.
	results := engine.Search("apple", notes, nil)
	require.Len(t, results, 2)
	assert.Equal(t, core.ID(1), results[0].Note.Id)
	assert.Equal(t, core.ID(2), results[1].Note.Id)
}

func TestEngine_RebuildOnCountMismatch(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{testNote(1, "apple", "")}
	engine.Build(notes)
	require.Len(t, engine.Search("apple", notes, nil), 1)

	// Growing the corpus makes the held index stale; the next search
	// must pick up the new note without an explicit rebuild.
	notes = append(notes, testNote(2, "apple tart", ""))
	results := engine.Search("apple", notes, nil)
	assert.Len(t, results, 2)
}

func TestEngine_NilEntriesDoNotChurnIndex(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{testNote(1, "apple", ""), nil, testNote(2, "apple tart", "")}
	engine.Build(notes)
	built := engine.active.Load()

	// The builder skips nil entries, so the freshness check must not count
	// them either; otherwise every search would rebuild.
	results := engine.Search("apple", notes, nil)
	assert.Len(t, results, 2)
	assert.Same(t, built, engine.active.Load())
}

func TestEngine_SearchIdempotent(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{
		testNote(1, "meeting notes", "quarterly planning agenda"),
		testNote(2, "planning", "meeting with the team"),
		testNote(3, "recipes", "banana bread"),
	}
	engine.Build(notes)

	first := engine.Search("meeting planning", notes, nil)
	second := engine.Search("meeting planning", notes, nil)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Note.Id, second[i].Note.Id)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestEngine_FindSimilar(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{
		testNote(1, "pasta dinner", "tomato basil garlic olive oil"),
		testNote(2, "pasta lunch", "tomato basil garlic olive bread"),
		testNote(3, "tax forms", "deadline filing paperwork"),
	}

	results := engine.FindSimilar(1, notes, 10)
	ids := make([]core.ID, 0, len(results))
	for _, result := range results {
		ids = append(ids, result.Note.Id)
	}
	assert.Contains(t, ids, core.ID(2))
	assert.NotContains(t, ids, core.ID(3))
	assert.NotContains(t, ids, core.ID(1))
}

func TestEngine_Autocomplete(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{
		testNote(1, "apple pie recipe", ""),
		testNote(2, "application notes", ""),
	}

	candidates := engine.Autocomplete("app", notes, 5)
	assert.Equal(t, []string{"apple", "application"}, candidates)
}

func TestEngine_Stats(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{
		testNote(1, "apple", "fruit"),
		testNote(2, "apple", "tree"),
	}

	stats := engine.Stats(notes)
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Greater(t, stats.VocabularySize, 0)
	require.NotEmpty(t, stats.TopTerms)
	assert.Equal(t, "apple", stats.TopTerms[0].Term)
}

func TestEngine_SearchWithMonitor(t *testing.T) {
	engine := newTestEngine(t)

	notes := []*core.Note{testNote(1, "apple", "")}

	var hits int
	monitor := &hitCounter{count: &hits}
	results := engine.SearchWithMonitor("apple", notes, nil, monitor)
	require.Len(t, results, 1)
	assert.Equal(t, 1, hits)
}

type hitCounter struct {
	count *int
}

func (h *hitCounter) Start(_ string)                 {}
func (h *hitCounter) AfterTokenize(_ []string)       {}
func (h *hitCounter) FuzzyFallback(_ string)         {}
func (h *hitCounter) ScoredHit(_ *core.SearchResult) { *h.count++ }
func (h *hitCounter) Finish(_ []*core.SearchResult)  {}
