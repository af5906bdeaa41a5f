package repository

import (
	"time"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia para Manager (DIP).
// Las consultas devuelven (nil, nil) cuando no hay fila.
type ManagerRepository interface {
	Create(manager *entity.Manager) error
	GetByID(id string) (*entity.Manager, error)
	// GetByUsername incluye PasswordHash (el único lugar donde el hash sale del storage).
	GetByUsername(username string) (*entity.Manager, error)
	GetByEmail(email string) (*entity.Manager, error)
	GetByFirebaseUID(uid string) (*entity.Manager, error)
	Update(manager *entity.Manager) error
	// UpdateLastLogin persiste solo el timestamp de último login.
	UpdateLastLogin(id string, at time.Time) error
	Delete(id string) error
}
