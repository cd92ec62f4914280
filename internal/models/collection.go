package models

// Collection represents a named set of items, e.g. "coins".
type Collection struct {
	ID             int64   `json:"id"`
	CollectionName string  `json:"collectionname"`
	CollectionType *string `json:"collection_type"`
}

// CollectionRow mirrors a row of the collections table.
type CollectionRow struct {
	ID             int64
	CollectionName string
	CollectionType *string
}

// CollectionFromRow converts a stored row into a Collection.
func CollectionFromRow(row CollectionRow) Collection {
	return Collection{
		ID:             row.ID,
		CollectionName: row.CollectionName,
		CollectionType: row.CollectionType,
	}
}

// CollectionInput is a collection payload as sent by a client.
type CollectionInput struct {
	ID             ID      `json:"id"`
	CollectionName *string `json:"collectionname" validate:"required,min=1"`
	CollectionType *string `json:"collection_type"`
}

// CollectionPatch carries a coalescing update: nil fields keep their stored value.
type CollectionPatch struct {
	ID             int64
	CollectionName *string
	CollectionType *string
}

// NewCollection builds the create shape of a collection from input.
func NewCollection(in CollectionInput) Collection {
	return Collection{
		CollectionName: deref(in.CollectionName),
		CollectionType: in.CollectionType,
	}
}

// NewCollectionPatch builds a coalescing update for the collection with the given id.
func NewCollectionPatch(id int64, in CollectionInput) CollectionPatch {
	return CollectionPatch{
		ID:             id,
		CollectionName: in.CollectionName,
		CollectionType: in.CollectionType,
	}
}
