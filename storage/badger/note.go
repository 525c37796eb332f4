package badger

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/relevo/core"
	"github.com/poiesic/relevo/storage"
)

const noteIDSeq = "noterecseq"

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(backend *Backend) (*NoteRepository, error) {
	idSeq, err := backend.GetSequence(noteIDSeq)
	if err != nil {
		return nil, err
	}

	return &NoteRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *NoteRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *NoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddNotes adds one or more notes to storage. Notes with ID=0 get a new
// sequence ID; pre-assigned IDs (e.g. content-based) are kept.
func (r *NoteRepository) AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			if note.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				note.Id = core.ID(nextID)
			}

			note.InsertedAt = time.Now().UTC()
			if note.UpdatedAt.IsZero() {
				note.UpdatedAt = note.InsertedAt
			}
			if note.CreatedAt.IsZero() {
				note.CreatedAt = note.InsertedAt
			}

			// Store primary record
			key := makeNoteKey(note.Id)
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index
			dateKey := makeNoteDateKey(note.UpdatedAt, note.Id)
			if err := tx.Set(dateKey, storage.MarshalID(note.Id)); err != nil {
				return err
			}

			// Update tag index
			if err := r.updateTagIndex(tx, note); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// UpdateNotes updates existing notes.
func (r *NoteRepository) UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			key := makeNoteKey(note.Id)

			// Read old note to detect index changes
			old, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			note.UpdatedAt = time.Now().UTC()
			note.InsertedAt = old.InsertedAt

			// Store updated note
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Move the date index entry
			oldDateKey := makeNoteDateKey(old.UpdatedAt, old.Id)
			if err := tx.Delete(oldDateKey); err != nil {
				return err
			}
			newDateKey := makeNoteDateKey(note.UpdatedAt, note.Id)
			if err := tx.Set(newDateKey, storage.MarshalID(note.Id)); err != nil {
				return err
			}

			// Update tag index if tags changed
			if !tagsEqual(old.Tags, note.Tags) {
				if err := r.deleteTagIndex(tx, old); err != nil {
					return err
				}
				if err := r.updateTagIndex(tx, note); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// DeleteNotes removes notes by their IDs.
func (r *NoteRepository) DeleteNotes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)

			// Read note to get metadata for index cleanup
			note, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if note == nil {
				return storage.ErrNotFound
			}

			// Delete from date index
			dateKey := makeNoteDateKey(note.UpdatedAt, note.Id)
			if err := tx.Delete(dateKey); err != nil {
				return err
			}

			// Delete from tag index
			if err := r.deleteTagIndex(tx, note); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetNote retrieves a single note by ID.
func (r *NoteRepository) GetNote(ctx context.Context, id core.ID) (*core.Note, error) {
	var result *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(id)
		var err error
		result, err = r.readNote(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetNotes retrieves multiple notes by their IDs.
func (r *NoteRepository) GetNotes(ctx context.Context, ids ...core.ID) ([]*core.Note, error) {
	var result []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)
			note, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if note != nil {
				result = append(result, note)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllNotes retrieves the full note snapshot.
func (r *NoteRepository) GetAllNotes(ctx context.Context) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(noteRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var note *core.Note
			err := iter.Item().Value(func(val []byte) error {
				var err error
				note, err = storage.UnmarshalNote(val)
				return err
			})
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)
	return results, err
}

// GetNotesByDateRange retrieves notes within a time range over UpdatedAt.
func (r *NoteRepository) GetNotesByDateRange(ctx context.Context, start, end time.Time) ([]*core.Note, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialNoteDateKey(start)
		endKey := makePartialNoteDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			note, err := r.readIndexedNote(tx, iter.Item())
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentNotes retrieves the N most recently updated notes, most recent
// first.
func (r *NoteRepository) GetRecentNotes(ctx context.Context, limit int) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent notes first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible date index key
		startKey := makePartialNoteDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(noteRecordDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			note, err := r.readIndexedNote(tx, iter.Item())
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetNotesByTag retrieves notes carrying the given tag.
func (r *NoteRepository) GetNotesByTag(ctx context.Context, tag string) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialNoteTagKey(normalizeTag(tag))
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			note, err := r.readIndexedNote(tx, iter.Item())
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)
	return results, err
}

// readNote reads and unmarshals a note by its primary key.
// Returns nil (not an error) if the key doesn't exist.
func (r *NoteRepository) readNote(tx *badger.Txn, key []byte) (*core.Note, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var note *core.Note
	err = item.Value(func(val []byte) error {
		var err error
		note, err = storage.UnmarshalNote(val)
		return err
	})
	return note, err
}

// readIndexedNote follows an index entry (whose value is a marshalled ID)
// to the full note.
func (r *NoteRepository) readIndexedNote(tx *badger.Txn, item *badger.Item) (*core.Note, error) {
	var noteID core.ID
	if err := item.Value(func(val []byte) error {
		var err error
		noteID, err = storage.UnmarshalID(val)
		return err
	}); err != nil {
		return nil, err
	}
	return r.readNote(tx, makeNoteKey(noteID))
}

func (r *NoteRepository) updateTagIndex(tx *badger.Txn, note *core.Note) error {
	for _, tag := range note.Tags {
		key := makeNoteTagKey(normalizeTag(tag), note.Id)
		if err := tx.Set(key, storage.MarshalID(note.Id)); err != nil {
			return err
		}
	}
	return nil
}

func (r *NoteRepository) deleteTagIndex(tx *badger.Txn, note *core.Note) error {
	for _, tag := range note.Tags {
		key := makeNoteTagKey(normalizeTag(tag), note.Id)
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func tagsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
