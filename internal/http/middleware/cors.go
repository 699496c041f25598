package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"bucketapi/internal/config"
)

// CORS builds the cross-origin middleware from configuration. The default
// allow-list is "*"; Content-Disposition is exposed so browsers can read the
// filename of downloaded attachments.
func CORS(cfg config.CORSConfig) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  "GET,POST,DELETE,OPTIONS",
		AllowHeaders:  "*",
		ExposeHeaders: fiber.HeaderContentDisposition,
	})
}
