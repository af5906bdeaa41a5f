package dto

import "time"

// LoginRequest entrada para login local (username + password).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y resumen del manager.
type LoginResponse struct {
	Token   string          `json:"token"`
	Manager ManagerResponse `json:"manager"`
}

// ManagerResponse resumen de un manager (nunca incluye el hash de password).
type ManagerResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	AuthMethod  string     `json:"auth_method"`
	IsActive    bool       `json:"is_active"`
	FirebaseUID string     `json:"firebase_uid,omitempty"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FirebaseRegisterRequest registro bajo el flujo de identidad externa.
// La password se envía al proveedor; localmente no se guarda ningún hash.
type FirebaseRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=200"`
}

// FirebaseLoginRequest login con ID token emitido por el proveedor.
type FirebaseLoginRequest struct {
	FirebaseToken string `json:"firebase_token" validate:"required"`
}

// FirebaseUpdateRequest actualización de perfil bajo el flujo externo.
// Campos vacíos conservan el valor actual (merge, a diferencia de productos).
type FirebaseUpdateRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// MessageResponse confirmación simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
