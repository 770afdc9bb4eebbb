package ports

import (
	"context"
	"io"
)

// StoragePort abstracts attachment blob storage (local disk or S3-compatible).
type StoragePort interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL returns a public or file-serving URL for the object, if the backend
	// exposes one.
	URL(key string) string
}
