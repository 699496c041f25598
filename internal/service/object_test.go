package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"bucketapi/internal/storage"
	storeMocks "bucketapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("maps storage entries", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("List", ctx, "a/").Return([]storage.ObjectInfo{
			{Key: "a/x.txt", Size: 3, LastModified: now},
			{Key: "a/y.bin", Size: 10, LastModified: now},
		}, nil)

		svc := NewObjectService(mStore, "files")
		got, err := svc.List(ctx, "a/")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a/x.txt", got[0].Key)
		assert.Equal(t, int64(3), got[0].Size)
		assert.Equal(t, now, got[0].LastModified)
		mStore.AssertExpectations(t)
	})

	t.Run("empty prefix lists everything", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("List", ctx, "").Return([]storage.ObjectInfo{}, nil)

		svc := NewObjectService(mStore, "files")
		got, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, got)
		mStore.AssertExpectations(t)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("List", ctx, "").Return(nil, errors.New("backend down"))

		svc := NewObjectService(mStore, "files")
		_, err := svc.List(ctx, "")
		assert.Error(t, err)
	})
}

func TestObjectService_Browse(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mStore := new(storeMocks.MockStorage)
	mStore.On("Browse", ctx, "docs/").Return(storage.BrowsePage{
		Prefixes: []string{"docs/reports/"},
		Objects: []storage.ObjectInfo{
			{Key: "docs/readme.md", Size: 1536, LastModified: now},
		},
	}, nil)

	svc := NewObjectService(mStore, "files")
	res, err := svc.Browse(ctx, "docs/")
	require.NoError(t, err)

	assert.Equal(t, "files", res.Bucket)
	assert.Equal(t, []string{"docs"}, res.Prefix)

	require.Len(t, res.Folders, 1)
	assert.Equal(t, "reports", res.Folders[0].Name)
	assert.Equal(t, "docs/reports/", res.Folders[0].Path)
	assert.Equal(t, "?prefix=ZG9jcy9yZXBvcnRzLw==", res.Folders[0].URL)

	require.Len(t, res.Files, 1)
	assert.Equal(t, "readme.md", res.Files[0].Key)
	assert.Equal(t, "docs/readme.md", res.Files[0].Path)
	assert.Equal(t, "1.50 KB", res.Files[0].Size)
	mStore.AssertExpectations(t)
}

func TestObjectService_Stat(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		key        string
		setupMocks func(mStore *storeMocks.MockStorage)
		wantErr    error
	}{
		{
			name: "happy path",
			key:  "a/x.txt",
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Stat", ctx, "a/x.txt").Return(storage.ObjectInfo{
					Key:         "a/x.txt",
					Size:        2048,
					ContentType: "text/plain",
					ETag:        "abc",
				}, nil)
			},
		},
		{
			name:       "empty key",
			key:        "",
			setupMocks: func(mStore *storeMocks.MockStorage) {},
			wantErr:    ErrKeyRequired,
		},
		{
			name: "missing object",
			key:  "gone.txt",
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Stat", ctx, "gone.txt").
					Return(storage.ObjectInfo{}, storage.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			tt.setupMocks(mStore)
			svc := NewObjectService(mStore, "files")

			meta, err := svc.Stat(ctx, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, meta.Key)
			assert.Equal(t, "2.00 KB", meta.SizeHuman)
			mStore.AssertExpectations(t)
		})
	}
}

func TestObjectService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Get", ctx, "a/x.txt").Return(
			io.NopCloser(strings.NewReader("hello")),
			storage.ObjectInfo{Key: "a/x.txt", Size: 5, ContentType: "text/plain"},
			nil,
		)

		svc := NewObjectService(mStore, "files")
		rc, meta, err := svc.Download(ctx, "a/x.txt")
		require.NoError(t, err)
		defer rc.Close()

		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))
		assert.Equal(t, int64(5), meta.Size)
		mStore.AssertExpectations(t)
	})

	t.Run("missing object", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Get", ctx, "gone.txt").
			Return(nil, storage.ObjectInfo{}, storage.ErrNotFound)

		svc := NewObjectService(mStore, "files")
		_, _, err := svc.Download(ctx, "gone.txt")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		svc := NewObjectService(new(storeMocks.MockStorage), "files")
		_, _, err := svc.Download(ctx, "")
		assert.ErrorIs(t, err, ErrKeyRequired)
	})
}

func TestObjectService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		key         string
		filename    string
		contentType string
		size        int64
		setupMocks  func(mStore *storeMocks.MockStorage) io.Reader
		wantKey     string
		wantErr     error
		wantErrMsg  string
	}{
		{
			name:        "exact key used verbatim",
			key:         "foo/bar.txt",
			filename:    "upload.txt",
			contentType: "text/plain",
			size:        5,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, "foo/bar.txt", r, storage.PutObjectOptions{
					Size:        5,
					ContentType: "text/plain",
					Metadata:    map[string]string{"original-filename": "upload.txt"},
				}).Return(storage.ObjectInfo{Key: "foo/bar.txt", Size: 5}, nil)
				return r
			},
			wantKey: "foo/bar.txt",
		},
		{
			name:     "trailing slash appends filename",
			key:      "incoming/",
			filename: "report.pdf",
			size:     9,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("%PDF-1.4\n")
				mStore.On("Put", ctx, "incoming/report.pdf", r, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "application/octet-stream"
				})).Return(storage.ObjectInfo{Key: "incoming/report.pdf"}, nil)
				return r
			},
			wantKey: "incoming/report.pdf",
		},
		{
			name:     "trailing slash without filename",
			key:      "incoming/",
			filename: "",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return strings.NewReader("x")
			},
			wantErr: ErrKeyRequired,
		},
		{
			name: "nil reader",
			key:  "foo.txt",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name: "empty key",
			key:  "",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return strings.NewReader("x")
			},
			wantErr: ErrKeyRequired,
		},
		{
			name:     "storage error",
			key:      "foo.txt",
			filename: "foo.txt",
			size:     5,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, "foo.txt", r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			r := tt.setupMocks(mStore)
			svc := NewObjectService(mStore, "files")

			key, err := svc.Upload(ctx, tt.key, tt.filename, r, tt.contentType, tt.size)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				mStore.AssertExpectations(t)
			}
		})
	}
}

func TestObjectService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "a/x.txt").Return(nil)

		svc := NewObjectService(mStore, "files")
		assert.NoError(t, svc.Delete(ctx, "a/x.txt"))
		mStore.AssertExpectations(t)
	})

	t.Run("missing key is success", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "gone.txt").Return(storage.ErrNotFound)

		svc := NewObjectService(mStore, "files")
		assert.NoError(t, svc.Delete(ctx, "gone.txt"))
	})

	t.Run("empty key", func(t *testing.T) {
		svc := NewObjectService(new(storeMocks.MockStorage), "files")
		assert.ErrorIs(t, svc.Delete(ctx, ""), ErrKeyRequired)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "a/x.txt").Return(errors.New("backend down"))

		svc := NewObjectService(mStore, "files")
		err := svc.Delete(ctx, "a/x.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delete from storage")
	})
}

func TestObjectService_PresignDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("default expiry", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("PresignGet", ctx, "a/x.txt", DefaultPresignExpiry).
			Return("https://example.com/signed", nil)

		svc := NewObjectService(mStore, "files")
		u, err := svc.PresignDownload(ctx, "a/x.txt", 0)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/signed", u)
		mStore.AssertExpectations(t)
	})

	t.Run("expiry clamped to protocol maximum", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("PresignGet", ctx, "a/x.txt", MaxPresignExpiry).
			Return("https://example.com/signed", nil)

		svc := NewObjectService(mStore, "files")
		_, err := svc.PresignDownload(ctx, "a/x.txt", 30*24*time.Hour)
		require.NoError(t, err)
		mStore.AssertExpectations(t)
	})

	t.Run("empty key", func(t *testing.T) {
		svc := NewObjectService(new(storeMocks.MockStorage), "files")
		_, err := svc.PresignDownload(ctx, "", time.Minute)
		assert.ErrorIs(t, err, ErrKeyRequired)
	})
}

func TestObjectService_Buckets(t *testing.T) {
	ctx := context.Background()

	mStore := new(storeMocks.MockStorage)
	mStore.On("ListBuckets", ctx).Return([]string{"files", "backups"}, nil)

	svc := NewObjectService(mStore, "files")
	names, err := svc.Buckets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"files", "backups"}, names)
	mStore.AssertExpectations(t)
}

func TestSplitPrefix(t *testing.T) {
	assert.Empty(t, splitPrefix(""))
	assert.Equal(t, []string{"a"}, splitPrefix("a/"))
	assert.Equal(t, []string{"a", "b"}, splitPrefix("a/b/"))
}
