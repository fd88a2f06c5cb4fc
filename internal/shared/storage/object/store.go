package object

import (
	"context"
	"io"
)

// ObjectStore is the file-storage boundary: uploads go in, an opaque
// storage key comes back, and the key later resolves to a public URL.
type ObjectStore interface {
	// Save stores the reader contents under the given namespace (e.g.
	// "project", "team", "blog") and returns the storage key that content
	// documents persist.
	Save(ctx context.Context, namespace string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	// ViewURL builds the publicly fetchable URL for a storage key. Pure
	// string construction; it performs no I/O and cannot fail.
	ViewURL(storageKey string) string
}
