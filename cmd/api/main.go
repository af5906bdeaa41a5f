package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	infrafirebase "github.com/tu-usuario/tienda-api/internal/infrastructure/firebase"
	"github.com/tu-usuario/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tienda-api/internal/interfaces/http"
	"github.com/tu-usuario/tienda-api/pkg/config"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	managerRepo := postgres.NewManagerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	authUC := auth.NewAuthUseCase(managerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, cfg.Catalog.MaxImageSize)

	// Flujo de identidad externa: opcional según configuración.
	var firebaseUC *auth.FirebaseAuthUseCase
	if cfg.Firebase.Enabled() {
		provider, err := infrafirebase.NewProvider(ctx, cfg.Firebase)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar proveedor de identidad")
		}
		firebaseUC = auth.NewFirebaseAuthUseCase(managerRepo, provider, log.Component("auth-firebase"))
		log.Info().Str("project", cfg.Firebase.ProjectID).Msg("flujo firebase habilitado")
	} else {
		log.Warn().Msg("flujo firebase deshabilitado (FIREBASE_PROJECT_ID vacío)")
	}

	// Bootstrap idempotente de la cuenta admin por defecto.
	created, err := authUC.EnsureDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap de cuenta admin")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("cuenta admin por defecto creada")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// El body más grande esperado es un producto con imagen base64 inline.
		BodyLimit: cfg.Catalog.MaxImageSize + 64*1024,
	})
	app.Use(recover.New())

	// Cabeceras de seguridad globales
	app.Use(helmet.New(helmet.Config{
		XFrameOptions:      "DENY",
		ContentTypeNosniff: "nosniff",
		XSSProtection:      "1; mode=block",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "geolocation=(), microphone=(), camera=()",
	}))

	// CORS: restringido al origen configurado en producción, abierto en desarrollo
	corsOrigin := "*"
	if cfg.App.IsProduction() && cfg.CORS.Origin != "" {
		corsOrigin = cfg.CORS.Origin
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		AuthUC:     authUC,
		FirebaseUC: firebaseUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
