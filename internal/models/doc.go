// Package models defines the domain records served by Hoard.
//
// # Records
//
//   - User: someone who owns items and follows collections
//   - Item: a single collectible, optionally placed in a collection
//   - Collection: a named set of items (e.g. "coins", "stamps")
//
// Each record comes in three shapes:
//
//  1. The record itself (User, Item, Collection), which is what the API returns.
//     It is always rebuilt from the row the store hands back, never from the
//     client payload.
//  2. A row (UserRow, ...) mirroring the table columns. Nullable columns are
//     pointers. UserFromRow and friends convert rows to records.
//  3. An input (UserInput, ...) decoded from an untrusted request body. Every
//     field is a pointer so that "absent" and "empty" stay distinguishable,
//     which the coalescing update depends on. Unknown JSON fields are dropped
//     during decoding. `validate` tags mark the fields a create requires.
//
// # Identity
//
// Identities are store-assigned integers starting at 1. The ID type makes
// "no identity" explicit instead of relying on zero values; see ID for how
// client-supplied values are interpreted.
package models
