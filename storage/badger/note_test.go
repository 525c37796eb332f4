// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) storage.NoteRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func sampleNote(title, content string, tags ...string) *core.Note {
	return &core.Note{
		Title:     title,
		Content:   content,
		Tags:      tags,
		Category:  "test",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAddNotes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("assigns sequence ids", func(t *testing.T) {
		added, err := repo.AddNotes(ctx, sampleNote("first", "body"), sampleNote("second", "body"))
		require.NoError(t, err)
		require.Len(t, added, 2)
		assert.NotZero(t, added[0].Id)
		assert.NotZero(t, added[1].Id)
		assert.NotEqual(t, added[0].Id, added[1].Id)
		assert.False(t, added[0].InsertedAt.IsZero())
		assert.False(t, added[0].UpdatedAt.IsZero())
	})

	t.Run("keeps pre-assigned ids", func(t *testing.T) {
		note := sampleNote("preassigned", "body")
		note.Id = core.IDFromContent(note.Title)
		added, err := repo.AddNotes(ctx, note)
		require.NoError(t, err)
		assert.Equal(t, core.IDFromContent("preassigned"), added[0].Id)
	})

	t.Run("roundtrip preserves fields", func(t *testing.T) {
		note := sampleNote("roundtrip", "メモを書く", "tag-a", "tag-b")
		note.Importance = core.ImportanceHigh
		note.Metadata = map[string]string{"source": "test"}
		added, err := repo.AddNotes(ctx, note)
		require.NoError(t, err)

		got, err := repo.GetNote(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, note.Title, got.Title)
		assert.Equal(t, note.Content, got.Content)
		assert.Equal(t, note.Tags, got.Tags)
		assert.Equal(t, note.Category, got.Category)
		assert.Equal(t, note.Importance, got.Importance)
		assert.Equal(t, note.Metadata, got.Metadata)
		// Timestamps are stored at microsecond precision.
		assert.True(t, note.CreatedAt.Equal(got.CreatedAt))
	})
}

func TestGetNote_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetNote(context.Background(), 424242)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetNotes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddNotes(ctx, sampleNote("one", ""), sampleNote("two", ""))
	require.NoError(t, err)

	notes, err := repo.GetNotes(ctx, added[0].Id, added[1].Id)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "one", notes[0].Title)
	assert.Equal(t, "two", notes[1].Title)
}

func TestUpdateNotes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddNotes(ctx, sampleNote("original", "body", "old-tag"))
	require.NoError(t, err)
	note := added[0]

	t.Run("updates content and tags", func(t *testing.T) {
		note.Content = "revised body"
		note.Tags = []string{"new-tag"}
		updated, err := repo.UpdateNotes(ctx, note)
		require.NoError(t, err)
		require.Len(t, updated, 1)

		got, err := repo.GetNote(ctx, note.Id)
		require.NoError(t, err)
		assert.Equal(t, "revised body", got.Content)
		assert.Equal(t, []string{"new-tag"}, got.Tags)

		byTag, err := repo.GetNotesByTag(ctx, "new-tag")
		require.NoError(t, err)
		require.Len(t, byTag, 1)

		byOldTag, err := repo.GetNotesByTag(ctx, "old-tag")
		require.NoError(t, err)
		assert.Empty(t, byOldTag, "stale tag index entries are removed")
	})

	t.Run("advances UpdatedAt", func(t *testing.T) {
		got, err := repo.GetNote(ctx, note.Id)
		require.NoError(t, err)
		assert.True(t, got.UpdatedAt.After(got.InsertedAt) || got.UpdatedAt.Equal(got.InsertedAt))
	})

	t.Run("unknown note", func(t *testing.T) {
		missing := sampleNote("ghost", "")
		missing.Id = 999999
		_, err := repo.UpdateNotes(ctx, missing)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteNotes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddNotes(ctx, sampleNote("doomed", "body", "tagged"))
	require.NoError(t, err)
	id := added[0].Id

	require.NoError(t, repo.DeleteNotes(ctx, id))

	_, err = repo.GetNote(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	byTag, err := repo.GetNotesByTag(ctx, "tagged")
	require.NoError(t, err)
	assert.Empty(t, byTag)

	t.Run("idempotent", func(t *testing.T) {
		assert.NoError(t, repo.DeleteNotes(ctx, id))
	})
}

func TestGetAllNotes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	all, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.AddNotes(ctx, sampleNote("a", ""), sampleNote("b", ""), sampleNote("c", ""))
	require.NoError(t, err)

	all, err = repo.GetAllNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetNotesByDateRange(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	old := sampleNote("old", "")
	old.UpdatedAt = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mid := sampleNote("mid", "")
	mid.UpdatedAt = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	recent := sampleNote("recent", "")
	recent.UpdatedAt = time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	_, err := repo.AddNotes(ctx, old, mid, recent)
	require.NoError(t, err)

	notes, err := repo.GetNotesByDateRange(ctx,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mid", notes[0].Title)
}

func TestGetRecentNotes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		note := sampleNote(title, "")
		note.UpdatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := repo.AddNotes(ctx, note)
		require.NoError(t, err)
	}

	notes, err := repo.GetRecentNotes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "third", notes[0].Title)
	assert.Equal(t, "second", notes[1].Title)
}

func TestGetNotesByTag(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AddNotes(ctx,
		sampleNote("a", "", "Cooking"),
		sampleNote("b", "", "cooking"),
		sampleNote("c", "", "travel"))
	require.NoError(t, err)

	notes, err := repo.GetNotesByTag(ctx, "COOKING")
	require.NoError(t, err)
	assert.Len(t, notes, 2, "tag lookup is case insensitive")
}

func TestWithTransaction(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := repo.AddNotes(ctx, sampleNote("inside", ""))
		return err
	})
	require.NoError(t, err)

	all, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
