package storage

import (
	"context"
	"time"

	"github.com/poiesic/relevo/core"
)

// NoteRepository provides operations for managing notes.
// Implementations must be thread-safe and support concurrent access.
type NoteRepository interface {
	// AddNotes adds one or more notes to storage.
	// For notes with ID=0, generates content-based IDs.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the notes with IDs and timestamps populated.
	AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// UpdateNotes updates existing notes.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any note doesn't exist.
	UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// DeleteNotes removes notes by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any note doesn't exist.
	DeleteNotes(ctx context.Context, ids ...core.ID) error

	// GetNote retrieves a single note by ID.
	// Returns ErrNotFound if the note doesn't exist.
	GetNote(ctx context.Context, id core.ID) (*core.Note, error)

	// GetNotes retrieves multiple notes by their IDs.
	// Returns only the notes that exist (no error for missing notes).
	GetNotes(ctx context.Context, ids ...core.ID) ([]*core.Note, error)

	// GetAllNotes retrieves the full note snapshot, the input the search
	// engine expects on every call.
	GetAllNotes(ctx context.Context) ([]*core.Note, error)

	// GetNotesByDateRange retrieves notes within a time range.
	// Returns notes where start <= UpdatedAt < end, ordered by update time.
	GetNotesByDateRange(ctx context.Context, start, end time.Time) ([]*core.Note, error)

	// GetRecentNotes retrieves the N most recently updated notes, most
	// recent first.
	GetRecentNotes(ctx context.Context, limit int) ([]*core.Note, error)

	// GetNotesByTag retrieves notes carrying the given tag.
	GetNotesByTag(ctx context.Context, tag string) ([]*core.Note, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
