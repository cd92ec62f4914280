package sqlite

import (
	"context"
	"database/sql"
)

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: join tables must be created AFTER the tables they reference.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL,
    email TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS collections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    collectionname TEXT NOT NULL,
    collection_type TEXT
);

CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    itemname TEXT NOT NULL,
    worth REAL
);

CREATE TABLE IF NOT EXISTS item_sets (
    item_id INTEGER NOT NULL,
    collection_id INTEGER NOT NULL,
    PRIMARY KEY (item_id, collection_id),
    FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
    FOREIGN KEY (collection_id) REFERENCES collections(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS possessions (
    owner_id INTEGER NOT NULL,
    item_id INTEGER NOT NULL,
    PRIMARY KEY (owner_id, item_id),
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS collectors (
    owner_id INTEGER NOT NULL,
    collection_id INTEGER NOT NULL,
    PRIMARY KEY (owner_id, collection_id),
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (collection_id) REFERENCES collections(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_item_sets_collection_id ON item_sets(collection_id);
CREATE INDEX IF NOT EXISTS idx_possessions_item_id ON possessions(item_id);
CREATE INDEX IF NOT EXISTS idx_collectors_collection_id ON collectors(collection_id);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
