package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bucketapi/internal/model"
	"bucketapi/internal/storage"
)

var (
	ErrKeyRequired = errors.New("object key is required")
	ErrNotFound    = errors.New("object not found")
	ErrReaderNil   = errors.New("reader is nil")
)

// DefaultPresignExpiry is used when the caller does not ask for a specific expiry.
const DefaultPresignExpiry = 15 * time.Minute

// MaxPresignExpiry is the S3 protocol ceiling for pre-signed URL lifetimes.
const MaxPresignExpiry = 7 * 24 * time.Hour

// ObjectService defines the use cases for the object gateway.
type ObjectService interface {
	// List returns a flat listing of every object under prefix.
	// An empty prefix lists the whole bucket.
	List(ctx context.Context, prefix string) ([]model.ObjectSummary, error)

	// Browse returns a single-level directory view of prefix: subfolders and
	// the files directly beneath it.
	Browse(ctx context.Context, prefix string) (*model.BrowseResult, error)

	// Stat returns metadata for a single object.
	Stat(ctx context.Context, key string) (*model.ObjectMetadata, error)

	// Download opens a streaming read of the object's content.
	// The caller owns the returned ReadCloser.
	Download(ctx context.Context, key string) (io.ReadCloser, *model.ObjectMetadata, error)

	// Upload streams content to storage. A key ending in "/" is treated as a
	// directory prefix and filename is appended; any existing object under the
	// final key is overwritten. Returns the final key.
	Upload(ctx context.Context, key, filename string, r io.Reader, contentType string, size int64) (string, error)

	// Delete removes an object. Deleting a key that does not exist succeeds.
	Delete(ctx context.Context, key string) error

	// PresignDownload returns a time-limited URL for downloading the object
	// without credentials. A non-positive expiry falls back to the default.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Buckets returns the names of all buckets reachable with the gateway's
	// credentials.
	Buckets(ctx context.Context) ([]string, error)
}

// objectService is a concrete implementation of ObjectService.
type objectService struct {
	store  storage.Storage
	bucket string
}

// NewObjectService constructs a new ObjectService over the given storage backend.
// bucket is only used to label browse results; the backend fixes the real bucket.
func NewObjectService(store storage.Storage, bucket string) ObjectService {
	return &objectService{store: store, bucket: bucket}
}

func (s *objectService) List(ctx context.Context, prefix string) ([]model.ObjectSummary, error) {
	objects, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.ObjectSummary, 0, len(objects))
	for _, obj := range objects {
		summaries = append(summaries, model.ObjectSummary{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return summaries, nil
}

func (s *objectService) Browse(ctx context.Context, prefix string) (*model.BrowseResult, error) {
	page, err := s.store.Browse(ctx, prefix)
	if err != nil {
		return nil, err
	}

	res := &model.BrowseResult{
		Bucket:  s.bucket,
		Prefix:  splitPrefix(prefix),
		Folders: []model.FolderEntry{},
		Files:   []model.FileEntry{},
	}

	for _, p := range page.Prefixes {
		res.Folders = append(res.Folders, model.FolderEntry{
			Name: strings.TrimSuffix(strings.TrimPrefix(p, prefix), "/"),
			Path: p,
			Size: model.HumanSize(0),
			URL:  "?prefix=" + base64.StdEncoding.EncodeToString([]byte(p)),
		})
	}
	for _, obj := range page.Objects {
		res.Files = append(res.Files, model.FileEntry{
			Key:          strings.TrimPrefix(obj.Key, prefix),
			Path:         obj.Key,
			Size:         model.HumanSize(obj.Size),
			LastModified: obj.LastModified,
		})
	}
	return res, nil
}

func (s *objectService) Stat(ctx context.Context, key string) (*model.ObjectMetadata, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}
	info, err := s.store.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMetadata(info), nil
}

func (s *objectService) Download(ctx context.Context, key string) (io.ReadCloser, *model.ObjectMetadata, error) {
	if key == "" {
		return nil, nil, ErrKeyRequired
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return rc, toMetadata(info), nil
}

func (s *objectService) Upload(ctx context.Context, key, filename string, r io.Reader, contentType string, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}

	// A trailing slash marks a directory-like target; store under key+filename,
	// as the gateway's clients expect. A plain key is used verbatim.
	finalKey := key
	if strings.HasSuffix(key, "/") {
		finalKey = key + filename
	}
	if finalKey == "" || strings.HasSuffix(finalKey, "/") {
		return "", ErrKeyRequired
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.store.Put(ctx, finalKey, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return finalKey, nil
}

// Delete is idempotent: the backend's "already absent" is reported as success.
func (s *objectService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	if err := s.store.Delete(ctx, key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete from storage: %w", err)
	}
	return nil
}

func (s *objectService) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if key == "" {
		return "", ErrKeyRequired
	}
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}
	if expiry > MaxPresignExpiry {
		expiry = MaxPresignExpiry
	}
	return s.store.PresignGet(ctx, key, expiry)
}

func (s *objectService) Buckets(ctx context.Context) ([]string, error) {
	return s.store.ListBuckets(ctx)
}

func toMetadata(info storage.ObjectInfo) *model.ObjectMetadata {
	return &model.ObjectMetadata{
		Key:          info.Key,
		Size:         info.Size,
		SizeHuman:    model.HumanSize(info.Size),
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		Metadata:     info.Metadata,
	}
}

// splitPrefix breaks "a/b/" into its path segments, mirroring how the browse
// response labels the current location. The final element after the last "/"
// is dropped (it is empty for directory prefixes).
func splitPrefix(prefix string) []string {
	parts := strings.Split(prefix, "/")
	return parts[:len(parts)-1]
}
