package storage

import "context"

// RecordStore is the persistence contract shared by every repository:
// whole-collection reads and whole-collection overwrites, addressed by a
// fixed string key. There are no partial updates and no transactions;
// callers do their own filtering and last write wins.
type RecordStore interface {
	// Read decodes every document under key into out, which must be a
	// pointer to a slice. A missing collection reads as an empty slice.
	Read(ctx context.Context, key string, out interface{}) error

	// WriteAll replaces the whole collection under key with docs,
	// which must be a slice.
	WriteAll(ctx context.Context, key string, docs interface{}) error
}
