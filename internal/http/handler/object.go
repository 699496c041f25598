package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"bucketapi/internal/service"
)

// decodeBase64Param decodes a base64-encoded query parameter into a UTF-8 key
// or prefix. An empty parameter decodes to the empty string.
func decodeBase64Param(v string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("decoded value is not valid UTF-8")
	}
	return string(raw), nil
}

// ListObjects handles GET /objects. The prefix parameter is base64-encoded;
// an empty prefix lists the whole bucket.
func ListObjects(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefix, err := decodeBase64Param(c.Query("prefix"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		res, err := svc.List(c.UserContext(), prefix)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "BACKEND_ERROR", err.Error())
		}
		return c.JSON(res)
	}
}

// BrowseObjects handles GET /browse: a single delimiter level of the bucket,
// split into folders and files.
func BrowseObjects(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefix, err := decodeBase64Param(c.Query("prefix"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		res, err := svc.Browse(c.UserContext(), prefix)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "BACKEND_ERROR", err.Error())
		}
		return c.JSON(res)
	}
}

// StatObject handles GET /object_info.
func StatObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := decodeBase64Param(c.Query("path"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		meta, err := svc.Stat(c.UserContext(), key)
		if err != nil {
			return objectError(c, key, err)
		}
		return c.JSON(meta)
	}
}

// DownloadObject handles GET /object. The object content is streamed through as
// an attachment named after the final path segment of the decoded key.
func DownloadObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := decodeBase64Param(c.Query("path"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		rc, meta, err := svc.Download(c.UserContext(), key)
		if err != nil {
			return objectError(c, key, err)
		}

		contentType := meta.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+path.Base(key)+`"`)
		c.Set("Access-Control-Expose-Headers", fiber.HeaderContentDisposition)

		// The stream is closed by the server once the body has been written.
		if meta.Size > 0 {
			return c.SendStream(rc, int(meta.Size))
		}
		return c.SendStream(rc)
	}
}

// DeleteObject handles DELETE /object. Deleting an absent key succeeds.
func DeleteObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := decodeBase64Param(c.Query("path"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		if err := svc.Delete(c.UserContext(), key); err != nil {
			return objectError(c, key, err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// UploadObject handles POST /object (multipart/form-data, field name: file).
// A decoded path ending in "/" is a directory prefix; the upload's filename is
// appended to it. An existing object under the final key is overwritten.
func UploadObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := decodeBase64Param(c.Query("path"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "multipart field 'file' is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		storedKey, err := svc.Upload(c.UserContext(), key, fh.Filename, f, ct, fh.Size)
		if err != nil {
			return objectError(c, key, err)
		}
		return c.JSON(fiber.Map{"status": "ok", "key": storedKey})
	}
}

// PresignObject handles GET /object_url: a time-limited download URL so large
// payloads can bypass the gateway.
func PresignObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := decodeBase64Param(c.Query("path"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
		}

		expiry := time.Duration(0)
		if raw := c.Query("expiry_seconds"); raw != "" {
			secs, err := strconv.Atoi(raw)
			if err != nil || secs <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_EXPIRY", "expiry_seconds must be a positive integer")
			}
			expiry = time.Duration(secs) * time.Second
		}

		u, err := svc.PresignDownload(c.UserContext(), key, expiry)
		if err != nil {
			return objectError(c, key, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// ListBuckets handles GET /buckets.
func ListBuckets(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := svc.Buckets(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "BACKEND_ERROR", err.Error())
		}
		return c.JSON(names)
	}
}

// objectError maps service errors for a single-object operation onto HTTP responses.
func objectError(c *fiber.Ctx, key string, err error) error {
	switch {
	case errors.Is(err, service.ErrKeyRequired):
		return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "decoded path must not be empty")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", fmt.Sprintf("object %q not found", key))
	default:
		return writeError(c, fiber.StatusInternalServerError, "BACKEND_ERROR", err.Error())
	}
}
