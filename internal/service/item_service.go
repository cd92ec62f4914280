package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/hoard/internal/models"
	"github.com/mmynk/hoard/internal/storage"
)

// ItemService implements the item operations.
type ItemService struct {
	store storage.Store
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// List returns all items.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.store.ListItems(ctx)
}

// Get retrieves an item by ID. Returns nil if the item does not exist.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.store.GetItem(ctx, id)
}

// ListByOwner returns the items a user possesses.
func (s *ItemService) ListByOwner(ctx context.Context, userID int64) ([]models.Item, error) {
	return s.store.ListItemsByOwner(ctx, userID)
}

// Create validates the input and saves it as a new item.
func (s *ItemService) Create(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	slog.Info("CreateItem request received", "itemname", deref(in.ItemName))

	if in.ID.Present() {
		slog.Warn("id ignored, appropriate id is generated automatically for new items", "id", in.ID)
	}
	if err := validateItemForCreate(in); err != nil {
		slog.Warn("Invalid item data", "error", err)
		return nil, err
	}

	item, err := s.store.CreateItem(ctx, models.NewItem(in))
	if err != nil {
		slog.Error("CreateItem failed", "error", err)
		return nil, err
	}

	slog.Info("Item created", "item_id", item.ID)
	return item, nil
}

// Patch applies a partial update. Returns nil if no item has the input id.
func (s *ItemService) Patch(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	id, err := requireID(in.ID, "PATCH")
	if err != nil {
		slog.Warn("id required for PATCH")
		return nil, err
	}

	return s.store.PatchItem(ctx, models.NewItemPatch(id, in))
}

// Put creates or updates an item depending on whether the body id exists.
func (s *ItemService) Put(ctx context.Context, in models.ItemInput) (*models.Item, Outcome, error) {
	return resolvePut(ctx, in.ID, s.putSteps(in))
}

// PutAt updates the item at routeID, or creates a new item from the same
// payload when routeID does not exist.
func (s *ItemService) PutAt(ctx context.Context, in models.ItemInput, routeID int64) (*models.Item, Outcome, error) {
	return resolvePutAt(ctx, in.ID, routeID, func() error {
		return validateItemForCreate(in)
	}, s.putSteps(in))
}

func (s *ItemService) putSteps(in models.ItemInput) putSteps[models.Item] {
	return putSteps[models.Item]{
		kind:   "item",
		exists: s.store.ItemExists,
		create: func(ctx context.Context) (*models.Item, error) {
			return s.Create(ctx, in)
		},
		update: func(ctx context.Context, id int64) (*models.Item, error) {
			return s.store.PatchItem(ctx, models.NewItemPatch(id, in))
		},
	}
}

// Delete removes an item. It reports false, without issuing the delete, when
// the item does not exist.
func (s *ItemService) Delete(ctx context.Context, id int64) (bool, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}

	if err := s.store.DeleteItem(ctx, id); err != nil {
		slog.Error("DeleteItem failed", "item_id", id, "error", err)
		return false, err
	}

	slog.Info("Item deleted", "item_id", id)
	return true, nil
}
