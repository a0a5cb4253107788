// Package storage lists the files of a media source. A source is either a
// local directory or an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrRootNotFound is returned when the media root (directory or bucket) does not exist.
var ErrRootNotFound = errors.New("media root not found")

// ObjectInfo describes one stored file. Key is slash-separated and relative
// to the storage root.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Storage is a read-only view of a media source.
type Storage interface {
	// List returns every regular file under the root, sorted by key.
	List(ctx context.Context) ([]ObjectInfo, error)
	// Capacity returns the total size in bytes of the volume holding the
	// root, or 0 when the backend has no fixed capacity.
	Capacity(ctx context.Context) (int64, error)
}
