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
	"fmt"
	"strings"
	"time"
)

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - Title or Content must be non-empty
//   - Importance must be a known level
//   - Tags must be non-empty strings
//   - CreatedAt must not be in the future
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - UpdatedAt (populated by the store)
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if note.Title == "" && note.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyNote)
	}

	if err := ValidateImportance(note.Importance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	for _, tag := range note.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyTag)
		}
	}

	if !IsValidTimestamp(note.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateImportance validates that an Importance has a known value.
func ValidateImportance(importance Importance) error {
	if importance < ImportanceNone || importance > ImportanceHigh {
		return fmt.Errorf("%w: value %d", ErrInvalidImportance, importance)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
