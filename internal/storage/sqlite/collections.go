package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/hoard/internal/models"
)

const collectionColumns = "collections.id, collections.collectionname, collections.collection_type"

// ListCollections returns every collection ordered by ID.
func (s *SQLiteStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return s.queryCollections(ctx, "list collections",
		"SELECT "+collectionColumns+" FROM collections ORDER BY collections.id")
}

// GetCollection retrieves a collection by ID.
func (s *SQLiteStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE collections.id = ?",
		id,
	)
	return scanCollection(row, "get collection")
}

// ListCollectionsByOwner returns the collections the given user collects.
func (s *SQLiteStore) ListCollectionsByOwner(ctx context.Context, userID int64) ([]models.Collection, error) {
	return s.queryCollections(ctx, "list collections by owner", `
		SELECT `+collectionColumns+`
		FROM collections
		JOIN collectors ON collectors.collection_id = collections.id
		WHERE collectors.owner_id = ?
		ORDER BY collections.id`,
		userID,
	)
}

// CollectionExists reports whether a collection with the given ID exists.
func (s *SQLiteStore) CollectionExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "collections", id)
}

// CreateCollection inserts a new collection and returns the stored row.
func (s *SQLiteStore) CreateCollection(ctx context.Context, collection models.Collection) (*models.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO collections (collectionname, collection_type)
		VALUES (?, ?)
		RETURNING id, collectionname, collection_type`,
		collection.CollectionName,
		nullString(collection.CollectionType),
	)
	created, err := scanCollection(row, "create collection")
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create collection: no row returned")
	}
	return created, nil
}

// PatchCollection updates the fields set in patch, keeping the stored value
// for the rest. Returns nil if no collection has the given ID.
func (s *SQLiteStore) PatchCollection(ctx context.Context, patch models.CollectionPatch) (*models.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE collections
		SET collectionname = COALESCE(?, collectionname),
		    collection_type = COALESCE(?, collection_type)
		WHERE id = ?
		RETURNING id, collectionname, collection_type`,
		nullString(patch.CollectionName),
		nullString(patch.CollectionType),
		patch.ID,
	)
	return scanCollection(row, "patch collection")
}

// DeleteCollection removes a collection by ID.
func (s *SQLiteStore) DeleteCollection(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "collections", id)
}

func (s *SQLiteStore) queryCollections(ctx context.Context, op, query string, args ...any) ([]models.Collection, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		r, err := scanCollectionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, models.CollectionFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collections: %w", err)
	}

	return collections, nil
}

func scanCollectionRow(sc scanner) (models.CollectionRow, error) {
	var (
		r              models.CollectionRow
		collectionType sql.NullString
	)
	if err := sc.Scan(&r.ID, &r.CollectionName, &collectionType); err != nil {
		return models.CollectionRow{}, err
	}
	r.CollectionType = stringPtr(collectionType)
	return r, nil
}

func scanCollection(row *sql.Row, op string) (*models.Collection, error) {
	r, err := scanCollectionRow(row)
	if err == sql.ErrNoRows {
		return nil, nil // Collection not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	collection := models.CollectionFromRow(r)
	return &collection, nil
}
