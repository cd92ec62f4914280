package models

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  int64
		present bool
		wantErr bool
	}{
		{name: "integer", input: `5`, wantID: 5, present: true},
		{name: "numeric string", input: `"42"`, wantID: 42, present: true},
		{name: "null", input: `null`},
		{name: "zero", input: `0`},
		{name: "negative", input: `-3`},
		{name: "empty string", input: `""`},
		{name: "fraction", input: `1.5`, wantErr: true},
		{name: "word", input: `"abc"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := id.Get()
			if ok != tt.present {
				t.Fatalf("present = %v, want %v", ok, tt.present)
			}
			if ok && got != tt.wantID {
				t.Errorf("id = %d, want %d", got, tt.wantID)
			}
		})
	}
}

func TestIDMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}{A: NewID(7)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":7,"b":null}` {
		t.Errorf("got %s", b)
	}
}

func TestInputDropsUnknownFields(t *testing.T) {
	payload := `{"username":"ada","email":"ada@example.com","role":"admin","id":9}`

	var in UserInput
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	user := NewUser(in)
	if user.ID != 0 {
		t.Errorf("create shape must not carry an id, got %d", user.ID)
	}

	out, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	if _, ok := fields["role"]; ok {
		t.Error("unknown field leaked into the record")
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 fields, got %v", fields)
	}
}

func TestItemInputIgnoresCollectionName(t *testing.T) {
	var in ItemInput
	if err := json.Unmarshal([]byte(`{"itemname":"penny","collectionname":"coins"}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	item := NewItem(in)
	if item.CollectionName != nil {
		t.Errorf("collectionname is read-only, got %q", *item.CollectionName)
	}
	if item.Worth != nil {
		t.Errorf("worth should stay unset, got %v", *item.Worth)
	}
}

func TestPatchKeepsPresence(t *testing.T) {
	var in CollectionInput
	if err := json.Unmarshal([]byte(`{"id":3,"collectionname":""}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	id, ok := in.ID.Get()
	if !ok {
		t.Fatal("expected id to be present")
	}

	patch := NewCollectionPatch(id, in)
	if patch.CollectionName == nil || *patch.CollectionName != "" {
		t.Error("explicit empty name must be kept as present")
	}
	if patch.CollectionType != nil {
		t.Error("absent collection_type must stay nil")
	}
}

func TestFromRow(t *testing.T) {
	worth := 0.25
	name := "coins"
	item := ItemFromRow(ItemRow{ID: 1, ItemName: "quarter", Worth: &worth, CollectionName: &name})
	if item.ID != 1 || item.ItemName != "quarter" || *item.Worth != 0.25 || *item.CollectionName != "coins" {
		t.Errorf("unexpected item: %+v", item)
	}

	coll := CollectionFromRow(CollectionRow{ID: 2, CollectionName: "stamps"})
	if coll.CollectionType != nil {
		t.Error("NULL collection_type should stay nil")
	}

	user := UserFromRow(UserRow{ID: 3, Username: "ada", Email: "ada@example.com"})
	if user.ID != 3 || user.Username != "ada" {
		t.Errorf("unexpected user: %+v", user)
	}
}
