package service

import (
	"context"
	"errors"
	"sort"

	"github.com/mmynk/hoard/internal/models"
)

var errStore = errors.New("store unavailable")

// fakeStore is an in-memory storage.Store that records every call by name.
type fakeStore struct {
	users       map[int64]models.User
	items       map[int64]models.Item
	collections map[int64]models.Collection
	nextID      int64

	// fail makes every call return errStore.
	fail bool

	// existsOverride, when set, is the answer of every existence check
	// regardless of the stored rows.
	existsOverride *bool

	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[int64]models.User),
		items:       make(map[int64]models.Item),
		collections: make(map[int64]models.Collection),
		nextID:      1,
	}
}

func (f *fakeStore) record(name string) error {
	f.calls = append(f.calls, name)
	if f.fail {
		return errStore
	}
	return nil
}

func (f *fakeStore) called(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeStore) exists(found bool) bool {
	if f.existsOverride != nil {
		return *f.existsOverride
	}
	return found
}

func (f *fakeStore) assign() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := f.record("ListUsers"); err != nil {
		return nil, err
	}
	users := []models.User{}
	for _, id := range sortedKeys(f.users) {
		users = append(users, f.users[id])
	}
	return users, nil
}

func (f *fakeStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if err := f.record("GetUser"); err != nil {
		return nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeStore) ListUsersByItem(ctx context.Context, itemID int64) ([]models.User, error) {
	return []models.User{}, f.record("ListUsersByItem")
}

func (f *fakeStore) ListUsersByCollection(ctx context.Context, collectionID int64) ([]models.User, error) {
	return []models.User{}, f.record("ListUsersByCollection")
}

func (f *fakeStore) UserExists(ctx context.Context, id int64) (bool, error) {
	if err := f.record("UserExists"); err != nil {
		return false, err
	}
	_, ok := f.users[id]
	return f.exists(ok), nil
}

func (f *fakeStore) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if err := f.record("CreateUser"); err != nil {
		return nil, err
	}
	user.ID = f.assign()
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeStore) PatchUser(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	if err := f.record("PatchUser"); err != nil {
		return nil, err
	}
	u, ok := f.users[patch.ID]
	if !ok {
		return nil, nil
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id int64) error {
	if err := f.record("DeleteUser"); err != nil {
		return err
	}
	delete(f.users, id)
	return nil
}

func (f *fakeStore) ListItems(ctx context.Context) ([]models.Item, error) {
	if err := f.record("ListItems"); err != nil {
		return nil, err
	}
	items := []models.Item{}
	for _, id := range sortedKeys(f.items) {
		items = append(items, f.items[id])
	}
	return items, nil
}

func (f *fakeStore) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	if err := f.record("GetItem"); err != nil {
		return nil, err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (f *fakeStore) ListItemsByOwner(ctx context.Context, userID int64) ([]models.Item, error) {
	return []models.Item{}, f.record("ListItemsByOwner")
}

func (f *fakeStore) ItemExists(ctx context.Context, id int64) (bool, error) {
	if err := f.record("ItemExists"); err != nil {
		return false, err
	}
	_, ok := f.items[id]
	return f.exists(ok), nil
}

func (f *fakeStore) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	if err := f.record("CreateItem"); err != nil {
		return nil, err
	}
	item.ID = f.assign()
	f.items[item.ID] = item
	return &item, nil
}

func (f *fakeStore) PatchItem(ctx context.Context, patch models.ItemPatch) (*models.Item, error) {
	if err := f.record("PatchItem"); err != nil {
		return nil, err
	}
	it, ok := f.items[patch.ID]
	if !ok {
		return nil, nil
	}
	if patch.ItemName != nil {
		it.ItemName = *patch.ItemName
	}
	if patch.Worth != nil {
		it.Worth = patch.Worth
	}
	f.items[it.ID] = it
	return &it, nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, id int64) error {
	if err := f.record("DeleteItem"); err != nil {
		return err
	}
	delete(f.items, id)
	return nil
}

func (f *fakeStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	if err := f.record("ListCollections"); err != nil {
		return nil, err
	}
	collections := []models.Collection{}
	for _, id := range sortedKeys(f.collections) {
		collections = append(collections, f.collections[id])
	}
	return collections, nil
}

func (f *fakeStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	if err := f.record("GetCollection"); err != nil {
		return nil, err
	}
	c, ok := f.collections[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeStore) ListCollectionsByOwner(ctx context.Context, userID int64) ([]models.Collection, error) {
	return []models.Collection{}, f.record("ListCollectionsByOwner")
}

func (f *fakeStore) CollectionExists(ctx context.Context, id int64) (bool, error) {
	if err := f.record("CollectionExists"); err != nil {
		return false, err
	}
	_, ok := f.collections[id]
	return f.exists(ok), nil
}

func (f *fakeStore) CreateCollection(ctx context.Context, collection models.Collection) (*models.Collection, error) {
	if err := f.record("CreateCollection"); err != nil {
		return nil, err
	}
	collection.ID = f.assign()
	f.collections[collection.ID] = collection
	return &collection, nil
}

func (f *fakeStore) PatchCollection(ctx context.Context, patch models.CollectionPatch) (*models.Collection, error) {
	if err := f.record("PatchCollection"); err != nil {
		return nil, err
	}
	c, ok := f.collections[patch.ID]
	if !ok {
		return nil, nil
	}
	if patch.CollectionName != nil {
		c.CollectionName = *patch.CollectionName
	}
	if patch.CollectionType != nil {
		c.CollectionType = patch.CollectionType
	}
	f.collections[c.ID] = c
	return &c, nil
}

func (f *fakeStore) DeleteCollection(ctx context.Context, id int64) error {
	if err := f.record("DeleteCollection"); err != nil {
		return err
	}
	delete(f.collections, id)
	return nil
}

func (f *fakeStore) AddPossession(ctx context.Context, userID, itemID int64) error {
	return f.record("AddPossession")
}

func (f *fakeStore) AddCollector(ctx context.Context, userID, collectionID int64) error {
	return f.record("AddCollector")
}

func (f *fakeStore) AddItemToCollection(ctx context.Context, collectionID, itemID int64) error {
	return f.record("AddItemToCollection")
}
