package http

import "github.com/gofiber/fiber/v2"

// Políticas de Cache-Control por tipo de ruta. El catálogo público tolera
// respuestas levemente viejas (5 minutos); las mutaciones y el panel admin
// nunca se cachean.
const (
	CacheCatalog = "public, max-age=300"
	CacheNone    = "no-store, no-cache, must-revalidate"
)

// CacheControl fija la cabecera Cache-Control de forma uniforme para un grupo
// de rutas.
func CacheControl(policy string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, policy)
		return c.Next()
	}
}
