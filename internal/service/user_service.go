package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/hoard/internal/models"
	"github.com/mmynk/hoard/internal/storage"
)

// UserService implements the user operations.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Get retrieves a user by ID. Returns nil if the user does not exist.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// ListByItem returns the users possessing an item.
func (s *UserService) ListByItem(ctx context.Context, itemID int64) ([]models.User, error) {
	return s.store.ListUsersByItem(ctx, itemID)
}

// ListByCollection returns the users collecting a collection.
func (s *UserService) ListByCollection(ctx context.Context, collectionID int64) ([]models.User, error) {
	return s.store.ListUsersByCollection(ctx, collectionID)
}

// Create validates the input and saves it as a new user. A client-supplied
// id is ignored; the store assigns one.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	slog.Info("CreateUser request received", "username", deref(in.Username))

	if in.ID.Present() {
		slog.Warn("id ignored, appropriate id is generated automatically for new users", "id", in.ID)
	}
	if err := validateUserForCreate(in); err != nil {
		slog.Warn("Invalid user data", "error", err)
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, models.NewUser(in))
	if err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, err
	}

	slog.Info("User created", "user_id", user.ID)
	return user, nil
}

// Patch applies a partial update. Fields absent from the input keep their
// stored value. Returns nil if no user has the input id.
func (s *UserService) Patch(ctx context.Context, in models.UserInput) (*models.User, error) {
	id, err := requireID(in.ID, "PATCH")
	if err != nil {
		slog.Warn("Invalid user data", "error", err)
		return nil, err
	}

	return s.store.PatchUser(ctx, models.NewUserPatch(id, in))
}

// Put creates or updates a user depending on whether the body id exists.
func (s *UserService) Put(ctx context.Context, in models.UserInput) (*models.User, Outcome, error) {
	return resolvePut(ctx, in.ID, s.putSteps(in))
}

// PutAt updates the user at routeID, or creates a new user from the same
// payload when routeID does not exist.
func (s *UserService) PutAt(ctx context.Context, in models.UserInput, routeID int64) (*models.User, Outcome, error) {
	return resolvePutAt(ctx, in.ID, routeID, func() error {
		return validateUserForCreate(in)
	}, s.putSteps(in))
}

func (s *UserService) putSteps(in models.UserInput) putSteps[models.User] {
	return putSteps[models.User]{
		kind:   "user",
		exists: s.store.UserExists,
		create: func(ctx context.Context) (*models.User, error) {
			return s.Create(ctx, in)
		},
		update: func(ctx context.Context, id int64) (*models.User, error) {
			return s.store.PatchUser(ctx, models.NewUserPatch(id, in))
		},
	}
}

// Delete removes a user. It reports false, without issuing the delete, when
// the user does not exist.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		slog.Error("DeleteUser failed", "user_id", id, "error", err)
		return false, err
	}

	slog.Info("User deleted", "user_id", id)
	return true, nil
}

// AddItem records that the user possesses an item.
func (s *UserService) AddItem(ctx context.Context, userID, itemID int64) error {
	return s.store.AddPossession(ctx, userID, itemID)
}

// AddCollection records that the user collects a collection.
func (s *UserService) AddCollection(ctx context.Context, userID, collectionID int64) error {
	return s.store.AddCollector(ctx, userID, collectionID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
