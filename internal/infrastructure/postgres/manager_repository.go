package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

const managerColumns = `id, username, email, full_name, password_hash, firebase_uid, auth_method, role, is_active, last_login, created_at, updated_at`

// ManagerRepo implementación del puerto ManagerRepository sobre PostgreSQL.
type ManagerRepo struct {
	pool *pgxpool.Pool
}

// NewManagerRepository construye el adaptador de persistencia para managers.
func NewManagerRepository(pool *pgxpool.Pool) *ManagerRepo {
	return &ManagerRepo{pool: pool}
}

// Create persiste un manager nuevo. Una violación de unicidad se traduce al
// error de dominio del campo (username/email/firebase_uid).
func (r *ManagerRepo) Create(m *entity.Manager) error {
	query := `
		INSERT INTO managers (` + managerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Username, m.Email, m.FullName,
		nullable(m.PasswordHash), nullable(m.FirebaseUID),
		m.AuthMethod, m.Role, m.IsActive, m.LastLogin, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return translateUnique(err)
		}
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

// GetByID obtiene un manager por ID.
func (r *ManagerRepo) GetByID(id string) (*entity.Manager, error) {
	return r.getOne(`SELECT `+managerColumns+` FROM managers WHERE id = $1`, id)
}

// GetByUsername obtiene un manager por username, incluyendo el hash de password
// (es la consulta del login; el resto de lecturas no necesita el hash).
func (r *ManagerRepo) GetByUsername(username string) (*entity.Manager, error) {
	return r.getOne(`SELECT `+managerColumns+` FROM managers WHERE username = $1`, username)
}

// GetByEmail obtiene un manager por email.
func (r *ManagerRepo) GetByEmail(email string) (*entity.Manager, error) {
	return r.getOne(`SELECT `+managerColumns+` FROM managers WHERE email = $1`, email)
}

// GetByFirebaseUID obtiene un manager por el subject del proveedor externo.
func (r *ManagerRepo) GetByFirebaseUID(uid string) (*entity.Manager, error) {
	return r.getOne(`SELECT `+managerColumns+` FROM managers WHERE firebase_uid = $1`, uid)
}

func (r *ManagerRepo) getOne(query string, arg any) (*entity.Manager, error) {
	var (
		m            entity.Manager
		passwordHash *string
		firebaseUID  *string
	)
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Username, &m.Email, &m.FullName, &passwordHash, &firebaseUID,
		&m.AuthMethod, &m.Role, &m.IsActive, &m.LastLogin, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	if passwordHash != nil {
		m.PasswordHash = *passwordHash
	}
	if firebaseUID != nil {
		m.FirebaseUID = *firebaseUID
	}
	return &m, nil
}

// Update actualiza el perfil de un manager. No toca password_hash salvo que
// venga un hash nuevo (el caso de uso solo lo rellena cuando cambió la credencial).
func (r *ManagerRepo) Update(m *entity.Manager) error {
	query := `
		UPDATE managers
		SET username = $2, email = $3, full_name = $4,
		    password_hash = COALESCE($5, password_hash),
		    role = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Username, m.Email, m.FullName,
		nullable(m.PasswordHash), m.Role, m.IsActive, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return translateUnique(err)
		}
		return fmt.Errorf("update manager: %w", err)
	}
	return nil
}

// UpdateLastLogin persiste únicamente el timestamp del último login exitoso.
func (r *ManagerRepo) UpdateLastLogin(id string, at time.Time) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE managers SET last_login = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// Delete elimina un manager por ID (acción admin explícita; la desactivación
// normal es is_active = false).
func (r *ManagerRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	return nil
}

// nullable convierte string vacío a NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
