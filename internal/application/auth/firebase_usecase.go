package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/ports"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// FirebaseAuthUseCase flujo alterno de autenticación vía proveedor de identidad
// externo. La escritura dual (proveedor + store local) no es transaccional:
// el registro compensa borrando la cuenta remota si el insert local falla; las
// demás inconsistencias parciales se registran en el log con ambos ids.
// El proveedor es autoritativo para la credencial; la fila local lo es para
// role, isActive y el perfil.
type FirebaseAuthUseCase struct {
	managerRepo repository.ManagerRepository
	provider    ports.IdentityProvider
	log         *logger.Logger
}

// NewFirebaseAuthUseCase construye el caso de uso del flujo externo.
func NewFirebaseAuthUseCase(managerRepo repository.ManagerRepository, provider ports.IdentityProvider, log *logger.Logger) *FirebaseAuthUseCase {
	return &FirebaseAuthUseCase{managerRepo: managerRepo, provider: provider, log: log}
}

// Register crea la cuenta primero en el proveedor y luego localmente.
// Si el insert local falla, se intenta borrar la cuenta remota recién creada
// (compensación best-effort) para no dejarla huérfana.
func (uc *FirebaseAuthUseCase) Register(ctx context.Context, in dto.FirebaseRegisterRequest) (*dto.ManagerResponse, error) {
	existing, err := uc.managerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	identity, err := uc.provider.CreateUser(ctx, in.Email, in.Password, in.FullName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	manager := &entity.Manager{
		ID:          uuid.New().String(),
		Username:    in.Username,
		Email:       in.Email,
		FullName:    in.FullName,
		FirebaseUID: identity.UID,
		AuthMethod:  entity.AuthMethodFirebase,
		Role:        entity.RoleManager,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.managerRepo.Create(manager); err != nil {
		if delErr := uc.provider.DeleteUser(ctx, identity.UID); delErr != nil {
			uc.log.Error().Err(delErr).
				Str("firebase_uid", identity.UID).
				Str("email", in.Email).
				Msg("compensación fallida: cuenta remota huérfana tras fallo del insert local")
		}
		return nil, err
	}
	return ToManagerResponse(manager), nil
}

// LoginWithToken verifica el ID token contra el proveedor, busca la cuenta
// local por el UID verificado y actualiza LastLogin.
func (uc *FirebaseAuthUseCase) LoginWithToken(ctx context.Context, idToken string) (*dto.ManagerResponse, error) {
	manager, _, err := uc.Authenticate(ctx, idToken)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.managerRepo.UpdateLastLogin(manager.ID, now); err != nil {
		return nil, err
	}
	manager.LastLogin = &now
	return ToManagerResponse(manager), nil
}

// Authenticate resuelve un ID token a la cuenta local: token inválido -> 401,
// sin cuenta local o cuenta inactiva -> 403. Lo usa el middleware del flujo externo.
func (uc *FirebaseAuthUseCase) Authenticate(ctx context.Context, idToken string) (*entity.Manager, *ports.TokenClaims, error) {
	claims, err := uc.provider.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, nil, domain.ErrInvalidToken
	}
	manager, err := uc.managerRepo.GetByFirebaseUID(claims.UID)
	if err != nil {
		return nil, nil, err
	}
	if manager == nil {
		return nil, nil, domain.ErrForbidden
	}
	if !manager.IsActive {
		return nil, nil, domain.ErrAccountDisabled
	}
	return manager, claims, nil
}

// UpdateProfile actualiza primero el store local (campos vacíos conservan el
// valor actual) y luego refleja el cambio en el proveedor de forma best-effort:
// un fallo remoto se registra pero no revierte la escritura local.
func (uc *FirebaseAuthUseCase) UpdateProfile(ctx context.Context, manager *entity.Manager, in dto.FirebaseUpdateRequest) (*dto.ManagerResponse, error) {
	changed := false
	if in.FullName != "" && in.FullName != manager.FullName {
		manager.FullName = in.FullName
		changed = true
	}
	if in.Email != "" && in.Email != manager.Email {
		manager.Email = in.Email
		changed = true
	}
	manager.UpdatedAt = time.Now()
	if err := uc.managerRepo.Update(manager); err != nil {
		return nil, err
	}
	if changed {
		if err := uc.provider.UpdateUser(ctx, manager.FirebaseUID, manager.Email, manager.FullName); err != nil {
			uc.log.Warn().Err(err).
				Str("manager_id", manager.ID).
				Str("firebase_uid", manager.FirebaseUID).
				Msg("no se pudo reflejar la actualización de perfil en el proveedor")
		}
	}
	return ToManagerResponse(manager), nil
}

// DeleteAccount borra primero la cuenta remota y después la fila local. Si el
// borrado local falla, queda una fila que referencia una cuenta remota ya
// inexistente: se registra con ambos ids (ventana de inconsistencia aceptada).
func (uc *FirebaseAuthUseCase) DeleteAccount(ctx context.Context, manager *entity.Manager) error {
	if err := uc.provider.DeleteUser(ctx, manager.FirebaseUID); err != nil {
		return err
	}
	if err := uc.managerRepo.Delete(manager.ID); err != nil {
		uc.log.Error().Err(err).
			Str("manager_id", manager.ID).
			Str("firebase_uid", manager.FirebaseUID).
			Msg("cuenta remota eliminada pero el borrado local falló")
		return err
	}
	return nil
}
