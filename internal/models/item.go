package models

// Item represents a single collectible.
type Item struct {
	ID       int64    `json:"id"`
	ItemName string   `json:"itemname"`
	Worth    *float64 `json:"worth"`

	// CollectionName is derived from the item_sets join and is read-only.
	// It is null when the item is not part of any collection.
	CollectionName *string `json:"collectionname"`
}

// ItemRow mirrors an item row joined with its collection name.
type ItemRow struct {
	ID             int64
	ItemName       string
	Worth          *float64
	CollectionName *string
}

// ItemFromRow converts a stored row into an Item.
func ItemFromRow(row ItemRow) Item {
	return Item{
		ID:             row.ID,
		ItemName:       row.ItemName,
		Worth:          row.Worth,
		CollectionName: row.CollectionName,
	}
}

// ItemInput is an item payload as sent by a client. A collectionname sent by
// the client is not decoded.
type ItemInput struct {
	ID       ID       `json:"id"`
	ItemName *string  `json:"itemname" validate:"required,min=1"`
	Worth    *float64 `json:"worth"`
}

// ItemPatch carries a coalescing update: nil fields keep their stored value.
type ItemPatch struct {
	ID       int64
	ItemName *string
	Worth    *float64
}

// NewItem builds the create shape of an item from input.
func NewItem(in ItemInput) Item {
	return Item{
		ItemName: deref(in.ItemName),
		Worth:    in.Worth,
	}
}

// NewItemPatch builds a coalescing update for the item with the given id.
func NewItemPatch(id int64, in ItemInput) ItemPatch {
	return ItemPatch{
		ID:       id,
		ItemName: in.ItemName,
		Worth:    in.Worth,
	}
}
