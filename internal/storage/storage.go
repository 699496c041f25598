package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains object storage abstractions for S3-compatible backends.
// Implementations must avoid using local disk and rely on streaming I/O only.

// ErrNotFound is returned when the backend reports that no object exists under
// the requested key. Implementations translate their native missing-key errors
// into this sentinel so callers can branch with errors.Is.
var ErrNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the
// implementation will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// BrowsePage is one delimiter level of a bucket: the common prefixes directly
// under the browsed prefix and the objects living at that level.
type BrowsePage struct {
	Prefixes []string
	Objects  []ObjectInfo
}

// Storage is a reusable, S3-compatible object storage client interface.
// Methods use context and streaming readers/writers; no local disk is used.
type Storage interface {
	// List returns every object whose key starts with prefix. An empty prefix
	// lists the whole bucket.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// Browse returns one "/"-delimited level under prefix: subfolder prefixes
	// and the objects directly at that level.
	Browse(ctx context.Context, prefix string) (BrowsePage, error)
	// Stat returns an object's metadata without downloading its content.
	// Returns ErrNotFound if no object exists under key.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	// Returns ErrNotFound if no object exists under key.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Put uploads an object under the given key using the provided reader and options.
	// An existing object under the same key is overwritten.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object
	// without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// ListBuckets returns the names of all buckets reachable with the configured
	// credentials.
	ListBuckets(ctx context.Context) ([]string, error)
	// Ping verifies the backend is reachable and the configured bucket exists.
	Ping(ctx context.Context) error
}
