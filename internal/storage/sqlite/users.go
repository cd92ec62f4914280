package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/hoard/internal/models"
)

const userColumns = "users.id, users.username, users.email"

// ListUsers returns every user ordered by ID.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.queryUsers(ctx, "list users",
		"SELECT "+userColumns+" FROM users ORDER BY users.id")
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE users.id = ?",
		id,
	)
	return scanUser(row, "get user")
}

// ListUsersByItem returns the users possessing the given item.
func (s *SQLiteStore) ListUsersByItem(ctx context.Context, itemID int64) ([]models.User, error) {
	return s.queryUsers(ctx, "list users by item", `
		SELECT `+userColumns+`
		FROM users
		JOIN possessions ON possessions.owner_id = users.id
		WHERE possessions.item_id = ?
		ORDER BY users.id`,
		itemID,
	)
}

// ListUsersByCollection returns the users collecting the given collection.
func (s *SQLiteStore) ListUsersByCollection(ctx context.Context, collectionID int64) ([]models.User, error) {
	return s.queryUsers(ctx, "list users by collection", `
		SELECT `+userColumns+`
		FROM users
		JOIN collectors ON collectors.owner_id = users.id
		WHERE collectors.collection_id = ?
		ORDER BY users.id`,
		collectionID,
	)
}

// UserExists reports whether a user with the given ID exists.
func (s *SQLiteStore) UserExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "users", id)
}

// CreateUser inserts a new user and returns the stored row.
func (s *SQLiteStore) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email) VALUES (?, ?) RETURNING id, username, email",
		user.Username,
		user.Email,
	)
	created, err := scanUser(row, "create user")
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create user: no row returned")
	}
	return created, nil
}

// PatchUser updates the fields set in patch, keeping the stored value for
// the rest. Returns nil if no user has the given ID.
func (s *SQLiteStore) PatchUser(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE users
		SET username = COALESCE(?, username),
		    email = COALESCE(?, email)
		WHERE id = ?
		RETURNING id, username, email`,
		nullString(patch.Username),
		nullString(patch.Email),
		patch.ID,
	)
	return scanUser(row, "patch user")
}

// DeleteUser removes a user by ID.
func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "users", id)
}

func (s *SQLiteStore) queryUsers(ctx context.Context, op, query string, args ...any) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var r models.UserRow
		if err := rows.Scan(&r.ID, &r.Username, &r.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, models.UserFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func scanUser(row *sql.Row, op string) (*models.User, error) {
	var r models.UserRow
	err := row.Scan(&r.ID, &r.Username, &r.Email)
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	user := models.UserFromRow(r)
	return &user, nil
}
