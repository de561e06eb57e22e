// Package storage provides the binary object store behind image uploads.
// Objects are addressed by opaque path-style keys; the backing
// implementation is any S3-compatible service (MinIO in development).
package storage

import "context"

// PlaceholderURL is returned whenever a display URL cannot be produced.
// The UI never has to handle a URL error.
const PlaceholderURL = "/placeholder.svg?height=400&width=400"

// ObjectStore defines the binary storage operations used by the store layer.
type ObjectStore interface {
	// Upload writes data under key, overwriting any existing object.
	Upload(ctx context.Context, key string, data []byte) error

	// Remove deletes the given keys in one batched call. A nil/empty slice
	// is a no-op.
	Remove(ctx context.Context, keys []string) error

	// PublicURL resolves a key to a fetchable URL. It is a purely local
	// computation and never fails: malformed input yields PlaceholderURL.
	PublicURL(key string) string
}
