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

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("meeting notes"), IDFromContent("meeting notes"))
	})

	t.Run("distinct inputs", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("meeting notes"), IDFromContent("meeting note"))
	})
}

func TestSearchText(t *testing.T) {
	note := &Note{
		Title:   "apple pie",
		Content: "recipe body",
		Tags:    []string{"cooking", "dessert"},
	}
	text := note.SearchText()
	assert.Contains(t, text, "apple pie")
	assert.Contains(t, text, "recipe body")
	assert.Contains(t, text, "cooking")
	assert.Contains(t, text, "dessert")

	t.Run("missing fields contribute nothing", func(t *testing.T) {
		empty := &Note{}
		assert.Empty(t, empty.SearchText())
	})
}
