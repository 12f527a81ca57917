package repositories

import (
	"context"
	"io"
)

// ObjectStorage abstracts the external store that holds profile pictures.
// Upload returns the public URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error

	// KeyFromURL maps a public URL previously returned by Upload back to its
	// object key. The second return is false for URLs this store does not
	// own (e.g. the default placeholder picture).
	KeyFromURL(rawURL string) (string, bool)
}
