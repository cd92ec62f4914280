// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/hoard/internal/models"
)

// Store defines every storage operation the services need.
// This abstraction allows swapping storage backends without changing the
// service layer.
//
// Lookups and updates that match no row return nil and a nil error.
// Any returned error is a storage fault.
type Store interface {
	UserStore
	ItemStore
	CollectionStore
	LinkStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists users.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsersByItem(ctx context.Context, itemID int64) ([]models.User, error)
	ListUsersByCollection(ctx context.Context, collectionID int64) ([]models.User, error)
	UserExists(ctx context.Context, id int64) (bool, error)

	// CreateUser inserts a new user. The ID of the argument is ignored and the
	// returned user carries the store-assigned one.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// PatchUser applies a coalescing update and returns the stored row.
	PatchUser(ctx context.Context, patch models.UserPatch) (*models.User, error)

	DeleteUser(ctx context.Context, id int64) error
}

// ItemStore persists items.
type ItemStore interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	ListItemsByOwner(ctx context.Context, userID int64) ([]models.Item, error)
	ItemExists(ctx context.Context, id int64) (bool, error)
	CreateItem(ctx context.Context, item models.Item) (*models.Item, error)
	PatchItem(ctx context.Context, patch models.ItemPatch) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// CollectionStore persists collections.
type CollectionStore interface {
	ListCollections(ctx context.Context) ([]models.Collection, error)
	GetCollection(ctx context.Context, id int64) (*models.Collection, error)
	ListCollectionsByOwner(ctx context.Context, userID int64) ([]models.Collection, error)
	CollectionExists(ctx context.Context, id int64) (bool, error)
	CreateCollection(ctx context.Context, collection models.Collection) (*models.Collection, error)
	PatchCollection(ctx context.Context, patch models.CollectionPatch) (*models.Collection, error)
	DeleteCollection(ctx context.Context, id int64) error
}

// LinkStore records the relationships between users, items and collections.
// Links are idempotent; referential integrity is left to the backend.
type LinkStore interface {
	AddPossession(ctx context.Context, userID, itemID int64) error
	AddCollector(ctx context.Context, userID, collectionID int64) error
	AddItemToCollection(ctx context.Context, collectionID, itemID int64) error
}
