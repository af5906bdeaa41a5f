package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
	"github.com/tu-usuario/tienda-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación local: login y bootstrap del admin.
type AuthUseCase struct {
	managerRepo repository.ManagerRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(managerRepo repository.ManagerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{managerRepo: managerRepo, jwtCfg: jwtCfg}
}

// hashPassword genera un hash bcrypt con salt aleatorio (DefaultCost = 2^10 rondas).
// Se llama únicamente al crear una cuenta o al recibir una password nueva en
// texto plano; nunca sobre un valor ya hasheado.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword compara en tiempo constante la password contra el hash.
func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Login verifica username/password contra el store de credenciales.
// Usuario inexistente y password incorrecta devuelven el mismo error para no
// filtrar qué usernames existen. La cuenta inactiva se verifica DESPUÉS de la
// password (mismo motivo) y no toca LastLogin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	manager, err := uc.managerRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if manager == nil || manager.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !verifyPassword(in.Password, manager.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !manager.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	now := time.Now()
	if err := uc.managerRepo.UpdateLastLogin(manager.ID, now); err != nil {
		return nil, err
	}
	manager.LastLogin = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, manager.ID, manager.Username, manager.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Manager: *ToManagerResponse(manager),
	}, nil
}

// EnsureDefaultAdmin crea la cuenta admin configurada si no existe (bootstrap
// idempotente). La red de seguridad real es el constraint único de username:
// si dos instancias arrancan a la vez, el insert perdedor se absorbe como éxito.
func (uc *AuthUseCase) EnsureDefaultAdmin(username, password, email string) (created bool, err error) {
	if username == "" || password == "" {
		return false, nil // bootstrap deshabilitado por configuración
	}
	existing, err := uc.managerRepo.GetByUsername(username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	now := time.Now()
	admin := &entity.Manager{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		FullName:     username,
		PasswordHash: hash,
		AuthMethod:   entity.AuthMethodLocal,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.managerRepo.Create(admin); err != nil {
		if err == domain.ErrUsernameTaken || err == domain.ErrEmailTaken {
			return false, nil // otra instancia ganó la carrera
		}
		return false, err
	}
	return true, nil
}

// ToManagerResponse proyecta la entidad a su resumen público (sin hash).
func ToManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		FullName:    m.FullName,
		Role:        m.Role,
		AuthMethod:  m.AuthMethod,
		IsActive:    m.IsActive,
		FirebaseUID: m.FirebaseUID,
		LastLogin:   m.LastLogin,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
