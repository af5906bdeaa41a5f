package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
)

// FirebaseAuthHandler maneja el flujo de autenticación vía proveedor externo.
type FirebaseAuthHandler struct {
	uc       *auth.FirebaseAuthUseCase
	validate *validator.Validate
}

// NewFirebaseAuthHandler construye el handler del flujo externo.
func NewFirebaseAuthHandler(uc *auth.FirebaseAuthUseCase) *FirebaseAuthHandler {
	return &FirebaseAuthHandler{uc: uc, validate: validator.New()}
}

// Register godoc
// @Summary      Registrar manager vía proveedor externo
// @Tags         auth-firebase
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FirebaseRegisterRequest  true  "email, password, username, full_name"
// @Success      201   {object}  dto.ManagerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/firebase/register [post]
func (h *FirebaseAuthHandler) Register(c *fiber.Ctx) error {
	var in dto.FirebaseRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password, username y full_name son requeridos"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión con ID token del proveedor
// @Tags         auth-firebase
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FirebaseLoginRequest  true  "firebase_token"
// @Success      200   {object}  dto.ManagerResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/firebase/login [post]
func (h *FirebaseAuthHandler) Login(c *fiber.Ctx) error {
	var in dto.FirebaseLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FirebaseToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "firebase_token es requerido"})
	}
	out, err := h.uc.LoginWithToken(c.Context(), in.FirebaseToken)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Manager autenticado actual
// @Tags         auth-firebase
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManagerResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/firebase/me [get]
func (h *FirebaseAuthHandler) Me(c *fiber.Ctx) error {
	manager := GetManager(c)
	if manager == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "debe iniciar sesión primero"})
	}
	return c.JSON(auth.ToManagerResponse(manager))
}

// Update godoc
// @Summary      Actualizar perfil del manager autenticado
// @Tags         auth-firebase
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FirebaseUpdateRequest  true  "full_name, email (opcionales)"
// @Success      200   {object}  dto.ManagerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/firebase/update [put]
func (h *FirebaseAuthHandler) Update(c *fiber.Ctx) error {
	manager := GetManager(c)
	if manager == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "debe iniciar sesión primero"})
	}
	var in dto.FirebaseUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email inválido o full_name demasiado largo"})
	}
	out, err := h.uc.UpdateProfile(c.Context(), manager, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar la cuenta del manager autenticado
// @Tags         auth-firebase
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/firebase/delete [delete]
func (h *FirebaseAuthHandler) Delete(c *fiber.Ctx) error {
	manager := GetManager(c)
	if manager == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "debe iniciar sesión primero"})
	}
	if err := h.uc.DeleteAccount(c.Context(), manager); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta eliminada"})
}
