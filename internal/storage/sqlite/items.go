package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/hoard/internal/models"
)

// itemSelect joins items with the collection they belong to. An item placed
// in several collections reports the alphabetically first name.
const itemSelect = `
	SELECT items.id, items.itemname, items.worth, MIN(collections.collectionname)
	FROM items
	LEFT JOIN item_sets ON item_sets.item_id = items.id
	LEFT JOIN collections ON collections.id = item_sets.collection_id`

// itemReturning is the RETURNING clause for writes, deriving the collection
// name the same way itemSelect does.
const itemReturning = `
	RETURNING id, itemname, worth, (
		SELECT MIN(collections.collectionname)
		FROM item_sets
		JOIN collections ON collections.id = item_sets.collection_id
		WHERE item_sets.item_id = items.id
	)`

// ListItems returns every item ordered by ID.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.queryItems(ctx, "list items",
		itemSelect+" GROUP BY items.id ORDER BY items.id")
}

// GetItem retrieves an item by ID, including its collection name.
func (s *SQLiteStore) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		itemSelect+" WHERE items.id = ? GROUP BY items.id",
		id,
	)
	return scanItem(row, "get item")
}

// ListItemsByOwner returns the items possessed by the given user.
func (s *SQLiteStore) ListItemsByOwner(ctx context.Context, userID int64) ([]models.Item, error) {
	return s.queryItems(ctx, "list items by owner",
		itemSelect+`
		JOIN possessions ON possessions.item_id = items.id
		WHERE possessions.owner_id = ?
		GROUP BY items.id
		ORDER BY items.id`,
		userID,
	)
}

// ItemExists reports whether an item with the given ID exists.
func (s *SQLiteStore) ItemExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "items", id)
}

// CreateItem inserts a new item and returns the stored row.
func (s *SQLiteStore) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		"INSERT INTO items (itemname, worth) VALUES (?, ?)"+itemReturning,
		item.ItemName,
		nullFloat(item.Worth),
	)
	created, err := scanItem(row, "create item")
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create item: no row returned")
	}
	return created, nil
}

// PatchItem updates the fields set in patch, keeping the stored value for
// the rest. Returns nil if no item has the given ID.
func (s *SQLiteStore) PatchItem(ctx context.Context, patch models.ItemPatch) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE items
		SET itemname = COALESCE(?, itemname),
		    worth = COALESCE(?, worth)
		WHERE id = ?`+itemReturning,
		nullString(patch.ItemName),
		nullFloat(patch.Worth),
		patch.ID,
	)
	return scanItem(row, "patch item")
}

// DeleteItem removes an item by ID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "items", id)
}

func (s *SQLiteStore) queryItems(ctx context.Context, op, query string, args ...any) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		r, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, models.ItemFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItemRow(sc scanner) (models.ItemRow, error) {
	var (
		r              models.ItemRow
		worth          sql.NullFloat64
		collectionName sql.NullString
	)
	if err := sc.Scan(&r.ID, &r.ItemName, &worth, &collectionName); err != nil {
		return models.ItemRow{}, err
	}
	r.Worth = floatPtr(worth)
	r.CollectionName = stringPtr(collectionName)
	return r, nil
}

func scanItem(row *sql.Row, op string) (*models.Item, error) {
	r, err := scanItemRow(row)
	if err == sql.ErrNoRows {
		return nil, nil // Item not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	item := models.ItemFromRow(r)
	return &item, nil
}
