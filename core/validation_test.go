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

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateNote(t *testing.T) {
	valid := func() *Note {
		return &Note{
			Title:     "title",
			Content:   "content",
			Tags:      []string{"tag"},
			CreatedAt: time.Now().Add(-time.Minute),
		}
	}

	t.Run("valid note", func(t *testing.T) {
		assert.NoError(t, ValidateNote(valid()))
	})

	t.Run("title only", func(t *testing.T) {
		note := valid()
		note.Content = ""
		assert.NoError(t, ValidateNote(note))
	})

	t.Run("nil note", func(t *testing.T) {
		assert.ErrorIs(t, ValidateNote(nil), ErrInvalidNote)
	})

	t.Run("empty note", func(t *testing.T) {
		note := valid()
		note.Title = ""
		note.Content = ""
		assert.ErrorIs(t, ValidateNote(note), ErrEmptyNote)
	})

	t.Run("blank tag", func(t *testing.T) {
		note := valid()
		note.Tags = []string{"ok", "  "}
		assert.ErrorIs(t, ValidateNote(note), ErrEmptyTag)
	})

	t.Run("unknown importance", func(t *testing.T) {
		note := valid()
		note.Importance = Importance(42)
		assert.ErrorIs(t, ValidateNote(note), ErrInvalidImportance)
	})

	t.Run("future timestamp", func(t *testing.T) {
		note := valid()
		note.CreatedAt = time.Now().Add(time.Hour)
		assert.ErrorIs(t, ValidateNote(note), ErrInvalidTimestamp)
	})
}

func TestValidateImportance(t *testing.T) {
	for _, importance := range []Importance{ImportanceNone, ImportanceLow, ImportanceNormal, ImportanceHigh} {
		assert.NoError(t, ValidateImportance(importance))
	}
	assert.ErrorIs(t, ValidateImportance(Importance(-1)), ErrInvalidImportance)
	assert.ErrorIs(t, ValidateImportance(Importance(4)), ErrInvalidImportance)
}
