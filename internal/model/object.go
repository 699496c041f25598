package model

import (
	"fmt"
	"time"
)

// ObjectSummary is one entry of a flat bucket listing.
// This is a pure domain model with no storage-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to a backend.
type ObjectSummary struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// ObjectMetadata is the per-object detail returned by a stat call.
type ObjectMetadata struct {
	Key          string            `json:"key"`
	Size         int64             `json:"size"`
	SizeHuman    string            `json:"size_human"`
	LastModified time.Time         `json:"last_modified"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// FolderEntry is a common prefix found while browsing one delimiter level.
// URL is a relative query string pointing back at the browse endpoint.
type FolderEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size string `json:"size"`
	URL  string `json:"url"`
}

// FileEntry is an object found while browsing one delimiter level.
// Key is relative to the browsed prefix; Path is the full object key.
type FileEntry struct {
	Key          string    `json:"key"`
	Path         string    `json:"path"`
	Size         string    `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// BrowseResult is a single-level, directory-style view of a prefix.
type BrowseResult struct {
	Bucket  string        `json:"bucket"`
	Prefix  []string      `json:"prefix"`
	Folders []FolderEntry `json:"folders"`
	Files   []FileEntry   `json:"files"`
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// HumanSize renders a byte count as a rounded, unit-suffixed string ("1.50 KB").
func HumanSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.2f %s", v, sizeUnits[i])
}
