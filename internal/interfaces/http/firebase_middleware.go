package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// Locals keys del flujo de identidad externa.
const (
	LocalManager        = "manager"
	LocalFirebaseClaims = "firebase_claims"
)

// FirebaseAuthMiddleware autentica con el proveedor externo: extrae el bearer
// token, lo verifica contra el proveedor y resuelve la cuenta local por UID.
// Header ausente/malformado o token inválido -> 401; sin cuenta local o cuenta
// inactiva -> 403. Adjunta el Manager y los claims verificados al contexto.
func FirebaseAuthMiddleware(uc *auth.FirebaseAuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "formato: Bearer <token>"})
		}
		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		manager, claims, err := uc.Authenticate(c.Context(), idToken)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalManager, manager)
		c.Locals(LocalFirebaseClaims, claims)
		return c.Next()
	}
}

// GetManager devuelve el Manager adjuntado por FirebaseAuthMiddleware.
func GetManager(c *fiber.Ctx) *entity.Manager {
	v := c.Locals(LocalManager)
	if v == nil {
		return nil
	}
	m, _ := v.(*entity.Manager)
	return m
}
