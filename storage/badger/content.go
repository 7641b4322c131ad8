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


// Package badger implements the storage interfaces on BadgerDB.
package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/catharsis/core"
	"github.com/poiesic/catharsis/storage"
)

// ContentRepository implements storage.ContentRepository for BadgerDB.
type ContentRepository struct {
	backend *Backend
}

var _ storage.ContentRepository = (*ContentRepository)(nil)

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(backend *Backend) (*ContentRepository, error) {
	return &ContentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. The backend is owned by the caller.
func (r *ContentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ContentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetOrCreateContentUnit finds or creates a content unit. The unit's ID
// is derived from owner and content, so duplicate submissions converge
// on the same record. Thread-safe: concurrent creation attempts under
// BadgerDB's SSI either converge or one retriably conflicts.
func (r *ContentRepository) GetOrCreateContentUnit(ctx context.Context, unit *core.ContentUnit) (*core.ContentUnit, error) {
	if unit.Id == 0 {
		unit.Id = ContentUnitID(unit.OwnerId, unit.Content)
	}

	var result *core.ContentUnit
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeContentUnitKey(unit.Id)

		existing, err := readContentUnit(tx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		if unit.CreatedAt.IsZero() {
			unit.CreatedAt = time.Now().UTC()
		}
		// Records carry microsecond timestamps; the returned unit must
		// match what a later read decodes.
		unit.CreatedAt = unit.CreatedAt.Truncate(time.Microsecond)
		if unit.Status == 0 {
			unit.Status = core.StatusCreated
		}

		if err := tx.Set(key, storage.MarshalContentUnit(unit)); err != nil {
			return err
		}
		if err := tx.Set(makeStatusKey(unit.Status, unit.Id), storage.MarshalID(unit.Id)); err != nil {
			return err
		}
		if err := tx.Set(makeDateKey(unit.CreatedAt, unit.Id), storage.MarshalID(unit.Id)); err != nil {
			return err
		}

		result = unit
		return tx.Commit()
	}, true)

	return result, err
}

// GetContentUnit retrieves a single content unit by ID.
func (r *ContentRepository) GetContentUnit(ctx context.Context, id core.ID) (*core.ContentUnit, error) {
	var unit *core.ContentUnit
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		unit, err = readContentUnit(tx, makeContentUnitKey(id))
		if err != nil {
			return err
		}
		if unit == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return unit, err
}

// GetContentUnitsByStatus scans the status index, oldest IDs first.
func (r *ContentRepository) GetContentUnitsByStatus(ctx context.Context, status core.Status, limit int) ([]*core.ContentUnit, error) {
	var results []*core.ContentUnit
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialStatusKey(status)

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			unit, err := readContentUnit(tx, makeContentUnitKey(id))
			if err != nil {
				return err
			}
			if unit != nil {
				results = append(results, unit)
			}
		}
		return nil
	}, false)
	return results, err
}

// GetRecentContentUnits walks the date index in reverse, most recent first.
func (r *ContentRepository) GetRecentContentUnits(ctx context.Context, limit int) ([]*core.ContentUnit, error) {
	var results []*core.ContentUnit
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key within the date index
		startKey := makeDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), core.ID(^uint64(0)))
		prefix := []byte(contentUnitDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			unit, err := readContentUnit(tx, makeContentUnitKey(id))
			if err != nil {
				return err
			}
			if unit != nil {
				results = append(results, unit)
				count++
			}
		}
		return nil
	}, false)
	return results, err
}

// UpdateStatus applies a compare-and-set transition in one transaction.
// The status index entry moves with the unit.
func (r *ContentRepository) UpdateStatus(ctx context.Context, id core.ID, from, to core.Status, analysis *core.EmotionAnalysis, lastErr string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeContentUnitKey(id)

		unit, err := readContentUnit(tx, key)
		if err != nil {
			return err
		}
		if unit == nil {
			return storage.ErrNotFound
		}
		if unit.Status != from {
			return fmt.Errorf("%w: unit %d is %s, expected %s", storage.ErrStatusConflict, id, unit.Status, from)
		}

		unit.Status = to
		unit.LastError = lastErr
		if analysis != nil {
			unit.Analysis = analysis
		}
		if to == core.StatusCompleted {
			unit.ProcessedAt = time.Now().UTC()
		}

		if err := tx.Set(key, storage.MarshalContentUnit(unit)); err != nil {
			return err
		}
		if err := tx.Delete(makeStatusKey(from, id)); err != nil {
			return err
		}
		if err := tx.Set(makeStatusKey(to, id), storage.MarshalID(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ContentUnitID derives the content-based unit ID from owner and text.
func ContentUnitID(owner core.ID, content string) core.ID {
	return core.IDFromContent(fmt.Sprintf("%d:%s", owner, content))
}

// readContentUnit reads a unit by key within a transaction.
// Returns nil without error when the key does not exist.
func readContentUnit(tx *badger.Txn, key []byte) (*core.ContentUnit, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var unit *core.ContentUnit
	err = item.Value(func(val []byte) error {
		var err error
		unit, err = storage.UnmarshalContentUnit(val)
		return err
	})
	return unit, err
}
