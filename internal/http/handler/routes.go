package handler

import (
	"github.com/gofiber/fiber/v2"

	"bucketapi/internal/service"
	"bucketapi/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic; everything interesting
// happens in the service layer.
func RegisterRoutes(app *fiber.App, store storage.Storage, objSvc service.ObjectService) {
	// Readiness: checks storage connectivity only
	app.Get("/health", HealthCheck(store))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Flat listing under a base64-encoded prefix
	app.Get("/objects", ListObjects(objSvc))

	// Directory-style single-level listing
	app.Get("/browse", BrowseObjects(objSvc))

	// Buckets reachable with the configured credentials
	app.Get("/buckets", ListBuckets(objSvc))

	// Object metadata
	app.Get("/object_info", StatObject(objSvc))

	// Pre-signed download URL
	app.Get("/object_url", PresignObject(objSvc))

	// Object content: download, delete, upload under one path
	app.Get("/object", DownloadObject(objSvc))
	app.Delete("/object", DeleteObject(objSvc))
	app.Post("/object", UploadObject(objSvc))
}
