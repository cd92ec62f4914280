package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/hoard/internal/models"
	"github.com/mmynk/hoard/internal/storage"
)

// CollectionService implements the collection operations.
type CollectionService struct {
	store storage.Store
}

// NewCollectionService creates a new CollectionService with the given storage backend.
func NewCollectionService(store storage.Store) *CollectionService {
	return &CollectionService{store: store}
}

// List returns all collections.
func (s *CollectionService) List(ctx context.Context) ([]models.Collection, error) {
	return s.store.ListCollections(ctx)
}

// Get retrieves a collection by ID. Returns nil if it does not exist.
func (s *CollectionService) Get(ctx context.Context, id int64) (*models.Collection, error) {
	return s.store.GetCollection(ctx, id)
}

// ListByOwner returns the collections a user collects.
func (s *CollectionService) ListByOwner(ctx context.Context, userID int64) ([]models.Collection, error) {
	return s.store.ListCollectionsByOwner(ctx, userID)
}

// Create validates the input and saves it as a new collection.
func (s *CollectionService) Create(ctx context.Context, in models.CollectionInput) (*models.Collection, error) {
	slog.Info("CreateCollection request received", "collectionname", deref(in.CollectionName))

	if in.ID.Present() {
		slog.Warn("id ignored, appropriate id is generated automatically for new collections", "id", in.ID)
	}
	if err := validateCollectionForCreate(in); err != nil {
		slog.Warn("Invalid collection data", "error", err)
		return nil, err
	}

	collection, err := s.store.CreateCollection(ctx, models.NewCollection(in))
	if err != nil {
		slog.Error("CreateCollection failed", "error", err)
		return nil, err
	}

	slog.Info("Collection created", "collection_id", collection.ID)
	return collection, nil
}

// Patch applies a partial update. Returns nil if no collection has the input id.
func (s *CollectionService) Patch(ctx context.Context, in models.CollectionInput) (*models.Collection, error) {
	id, err := requireID(in.ID, "PATCH")
	if err != nil {
		slog.Warn("Invalid collection data", "error", err)
		return nil, err
	}

	return s.store.PatchCollection(ctx, models.NewCollectionPatch(id, in))
}

// Put creates or updates a collection depending on whether the body id exists.
func (s *CollectionService) Put(ctx context.Context, in models.CollectionInput) (*models.Collection, Outcome, error) {
	return resolvePut(ctx, in.ID, s.putSteps(in))
}

// PutAt updates the collection at routeID, or creates a new collection from
// the same payload when routeID does not exist.
func (s *CollectionService) PutAt(ctx context.Context, in models.CollectionInput, routeID int64) (*models.Collection, Outcome, error) {
	return resolvePutAt(ctx, in.ID, routeID, func() error {
		return validateCollectionForCreate(in)
	}, s.putSteps(in))
}

func (s *CollectionService) putSteps(in models.CollectionInput) putSteps[models.Collection] {
	return putSteps[models.Collection]{
		kind:   "collection",
		exists: s.store.CollectionExists,
		create: func(ctx context.Context) (*models.Collection, error) {
			return s.Create(ctx, in)
		},
		update: func(ctx context.Context, id int64) (*models.Collection, error) {
			return s.store.PatchCollection(ctx, models.NewCollectionPatch(id, in))
		},
	}
}

// Delete removes a collection. It reports false, without issuing the
// delete, when the collection does not exist.
func (s *CollectionService) Delete(ctx context.Context, id int64) (bool, error) {
	collection, err := s.store.GetCollection(ctx, id)
	if err != nil {
		return false, err
	}
	if collection == nil {
		return false, nil
	}

	if err := s.store.DeleteCollection(ctx, id); err != nil {
		slog.Error("DeleteCollection failed", "collection_id", id, "error", err)
		return false, err
	}

	slog.Info("Collection deleted", "collection_id", id)
	return true, nil
}

// AddItem places an item in the collection.
func (s *CollectionService) AddItem(ctx context.Context, collectionID, itemID int64) error {
	return s.store.AddItemToCollection(ctx, collectionID, itemID)
}
