package sqlite

import (
	"context"
	"fmt"
)

// AddPossession records that a user owns an item.
func (s *SQLiteStore) AddPossession(ctx context.Context, userID, itemID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO possessions (owner_id, item_id) VALUES (?, ?)",
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to add possession: %w", err)
	}
	return nil
}

// AddCollector records that a user collects a collection.
func (s *SQLiteStore) AddCollector(ctx context.Context, userID, collectionID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO collectors (owner_id, collection_id) VALUES (?, ?)",
		userID, collectionID,
	)
	if err != nil {
		return fmt.Errorf("failed to add collector: %w", err)
	}
	return nil
}

// AddItemToCollection places an item in a collection.
func (s *SQLiteStore) AddItemToCollection(ctx context.Context, collectionID, itemID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO item_sets (item_id, collection_id) VALUES (?, ?)",
		itemID, collectionID,
	)
	if err != nil {
		return fmt.Errorf("failed to add item to collection: %w", err)
	}
	return nil
}
