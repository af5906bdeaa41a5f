package ports

import "context"

// ExternalIdentity cuenta emitida por el proveedor de identidad externo.
type ExternalIdentity struct {
	UID         string
	Email       string
	DisplayName string
}

// TokenClaims resultado de verificar un bearer token contra el proveedor.
type TokenClaims struct {
	UID    string
	Claims map[string]interface{}
}

// IdentityProvider puerto hacia el proveedor de identidad externo (Firebase Auth).
// El sistema confía en él para la decisión de autenticación: no se reimplementa
// la verificación de credenciales localmente para estas cuentas.
type IdentityProvider interface {
	// VerifyToken valida el ID token y devuelve el subject estable (UID) y sus claims.
	VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*ExternalIdentity, error)
	UpdateUser(ctx context.Context, uid, email, displayName string) error
	DeleteUser(ctx context.Context, uid string) error
}
