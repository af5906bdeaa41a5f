package domain

import "errors"

// Errores de dominio (sin dependencias externas). El handler HTTP centralizado
// los traduce a status + mensaje; ningún otro lugar decide códigos HTTP.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrPayloadTooLarge    = errors.New("payload demasiado grande")
	ErrInvalidCredentials = errors.New("credenciales inválidas") // mismo error para usuario inexistente y password incorrecto
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAccountDisabled    = errors.New("cuenta desactivada")
	ErrUsernameTaken      = errors.New("el username ya está registrado")
	ErrEmailTaken         = errors.New("el email ya está registrado")
	ErrSKUTaken           = errors.New("el sku ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
)
