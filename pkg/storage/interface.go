package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files (profile pictures) live.
// Implementations: local filesystem for development, S3/MinIO for production.
type Storage interface {
	// Write stores content under the given key. size is the expected
	// content length (-1 if unknown).
	Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Read retrieves content for the given key. The caller closes the reader.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the content with the given key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether content with the given key exists.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL returns the stable URL under which the object is served.
	PublicURL(key string) string
}
