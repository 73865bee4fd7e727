// Package builder orchestrates the dictionary build: parse each source,
// merge duplicate headwords and emit the JSON documents.
package builder

import (
	"context"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// DocumentStore defines the output contract consumed by the build pipeline.
// All methods use only domain types; no adapter imports.
// Implemented by jsonfile.Store.
type DocumentStore interface {
	// WriteDocument fully replaces the named document. On failure any prior
	// file of the same name is left untouched.
	WriteDocument(ctx context.Context, fileName string, doc domain.DictionaryDocument) error

	// UpsertIndex replaces the index record with the same ID, or appends it.
	UpsertIndex(ctx context.Context, record domain.IndexRecord) error
}
