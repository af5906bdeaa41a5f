package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	AuthUC     *auth.AuthUseCase
	FirebaseUC *auth.FirebaseAuthUseCase // nil = flujo externo deshabilitado
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth local (público)
	authGroup := api.Group("/auth", CacheControl(CacheNone))
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Auth vía proveedor externo (se monta solo si está configurado)
	if deps.FirebaseUC != nil {
		fb := authGroup.Group("/firebase")
		fbHandler := NewFirebaseAuthHandler(deps.FirebaseUC)
		fb.Post("/register", fbHandler.Register)
		fb.Post("/login", fbHandler.Login)
		fbGuard := FirebaseAuthMiddleware(deps.FirebaseUC)
		fb.Get("/me", fbGuard, fbHandler.Me)
		fb.Put("/update", fbGuard, fbHandler.Update)
		fb.Delete("/delete", fbGuard, fbHandler.Delete)
	}

	// Catálogo: lecturas públicas y cacheables por 5 minutos. Las mutaciones
	// llevan su cadena de middleware por ruta: un middleware de grupo en Fiber
	// se monta sobre el prefijo y afectaría también a las lecturas públicas.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", CacheControl(CacheCatalog), productHandler.List)
	products.Get("/:id", CacheControl(CacheCatalog), productHandler.GetByID)

	guard := []fiber.Handler{
		CacheControl(CacheNone),
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleManager),
	}
	products.Post("/", append(guard, productHandler.Create)...)
	products.Put("/:id", append(guard, productHandler.Update)...)
	products.Delete("/:id", append(guard, productHandler.Delete)...)
}
