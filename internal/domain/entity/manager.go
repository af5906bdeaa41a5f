package entity

import "time"

// Roles válidos para Manager.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Métodos de autenticación (mutuamente excluyentes por cuenta).
const (
	AuthMethodLocal    = "local"    // username + password (bcrypt)
	AuthMethodFirebase = "firebase" // bearer token verificado contra el proveedor externo
)

// Manager representa una cuenta del panel de administración de la tienda.
// PasswordHash solo se llena para cuentas locales; FirebaseUID solo para
// cuentas del proveedor externo. Nunca se exponen en respuestas.
type Manager struct {
	ID           string
	Username     string // único, 3-50 caracteres
	Email        string // único, formato validado en la frontera
	FullName     string
	PasswordHash string     // bcrypt; vacío en cuentas firebase
	FirebaseUID  string     // vacío en cuentas locales; único cuando existe
	AuthMethod   string     // local | firebase
	Role         string     // admin | manager
	IsActive     bool       // cuentas inactivas no pueden autenticarse
	LastLogin    *time.Time // solo se actualiza en login exitoso
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
