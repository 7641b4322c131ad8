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
	"context"

	"github.com/poiesic/catharsis/core"
)

// ContentRepository provides operations for managing content units.
// Implementations must be thread-safe and support concurrent access.
type ContentRepository interface {
	// GetOrCreateContentUnit finds or creates a content unit.
	// Units use content-based IDs (IDFromContent of owner and content),
	// so resubmitting identical text from the same owner returns the
	// existing unit rather than creating a duplicate.
	// Sets CreatedAt on creation if not already set.
	GetOrCreateContentUnit(ctx context.Context, unit *core.ContentUnit) (*core.ContentUnit, error)

	// GetContentUnit retrieves a single content unit by ID.
	// Returns ErrNotFound if the unit doesn't exist.
	GetContentUnit(ctx context.Context, id core.ID) (*core.ContentUnit, error)

	// GetContentUnitsByStatus retrieves units currently in the given
	// status, up to limit (0 for no limit), oldest first.
	GetContentUnitsByStatus(ctx context.Context, status core.Status, limit int) ([]*core.ContentUnit, error)

	// GetRecentContentUnits retrieves the N most recently created units,
	// most recent first.
	GetRecentContentUnits(ctx context.Context, limit int) ([]*core.ContentUnit, error)

	// UpdateStatus moves a unit from one status to another atomically.
	// The update applies only if the stored status equals from;
	// otherwise ErrStatusConflict is returned and nothing changes.
	// A non-nil analysis is attached, lastErr replaces the stored error
	// text, and ProcessedAt is stamped when to is StatusCompleted.
	UpdateStatus(ctx context.Context, id core.ID, from, to core.Status, analysis *core.EmotionAnalysis, lastErr string) error

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
