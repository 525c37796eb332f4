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

package storage

import (
	"testing"
	"time"

	"github.com/poiesic/relevo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRoundtrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	note := &core.Note{
		Id:         7,
		Title:      "買い物リスト",
		Content:    "牛乳とパンを買う",
		Tags:       []string{"家事", "errands"},
		Category:   "personal",
		Importance: core.ImportanceLow,
		CreatedAt:  now.Add(-time.Hour),
		UpdatedAt:  now,
		InsertedAt: now,
		Metadata:   map[string]string{"device": "laptop"},
	}

	data := MarshalNote(note)
	got, err := UnmarshalNote(data)
	require.NoError(t, err)

	assert.Equal(t, note.Id, got.Id)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)
	assert.Equal(t, note.Tags, got.Tags)
	assert.Equal(t, note.Category, got.Category)
	assert.Equal(t, note.Importance, got.Importance)
	assert.Equal(t, note.Metadata, got.Metadata)
	assert.True(t, note.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, note.UpdatedAt.Equal(got.UpdatedAt))
}

func TestIDRoundtrip(t *testing.T) {
	for _, id := range []core.ID{0, 1, 1 << 40, core.IDFromContent("roundtrip")} {
		got, err := UnmarshalID(MarshalID(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestUnmarshalNote_Truncated(t *testing.T) {
	note := &core.Note{Id: 1, Title: "title", Content: "content"}
	data := MarshalNote(note)

	_, err := UnmarshalNote(data[:len(data)/2])
	assert.Error(t, err)
}
