package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeManagerRepo: ManagerRepository en memoria para los tests de usecases
// ──────────────────────────────────────────────────────────────────────────────

type fakeManagerRepo struct {
	managers map[string]*entity.Manager // por ID
	failNext error                      // si no es nil, la próxima escritura falla
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{managers: make(map[string]*entity.Manager)}
}

func (f *fakeManagerRepo) Create(m *entity.Manager) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	for _, existing := range f.managers {
		if existing.Username == m.Username {
			return domain.ErrUsernameTaken
		}
		if existing.Email == m.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *m
	f.managers[m.ID] = &cp
	return nil
}

func (f *fakeManagerRepo) GetByID(id string) (*entity.Manager, error) {
	if m, ok := f.managers[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeManagerRepo) GetByUsername(username string) (*entity.Manager, error) {
	for _, m := range f.managers {
		if m.Username == username {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeManagerRepo) GetByEmail(email string) (*entity.Manager, error) {
	for _, m := range f.managers {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeManagerRepo) GetByFirebaseUID(uid string) (*entity.Manager, error) {
	for _, m := range f.managers {
		if m.FirebaseUID == uid {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeManagerRepo) Update(m *entity.Manager) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	cp := *m
	f.managers[m.ID] = &cp
	return nil
}

func (f *fakeManagerRepo) UpdateLastLogin(id string, at time.Time) error {
	if m, ok := f.managers[id]; ok {
		t := at
		m.LastLogin = &t
	}
	return nil
}

func (f *fakeManagerRepo) Delete(id string) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	delete(f.managers, id)
	return nil
}

// seedManager inserta una cuenta local con la password dada.
func seedManager(t *testing.T, repo *fakeManagerRepo, username, password string, active bool) *entity.Manager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	m := &entity.Manager{
		ID:           "id-" + username,
		Username:     username,
		Email:        username + "@tienda.test",
		FullName:     username,
		PasswordHash: string(hash),
		AuthMethod:   entity.AuthMethodLocal,
		Role:         entity.RoleManager,
		IsActive:     active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(m))
	return m
}

func testJWTCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "tienda-test"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_ActualizaLastLogin(t *testing.T) {
	repo := newFakeManagerRepo()
	seedManager(t, repo, "carla", "secreta123", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	before := time.Now()
	out, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token, "el login debe devolver un token")
	assert.Equal(t, "carla", out.Manager.Username)
	require.NotNil(t, out.Manager.LastLogin, "lastLogin debe quedar seteado")
	assert.False(t, out.Manager.LastLogin.Before(before),
		"lastLogin debe ser >= al instante previo al login")

	// El timestamp también debe haberse persistido.
	stored, err := repo.GetByUsername("carla")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
}

func TestLogin_PasswordIncorrectaYUsuarioInexistente_MismoError(t *testing.T) {
	repo := newFakeManagerRepo()
	seedManager(t, repo, "carla", "secreta123", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "carla", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})

	require.Error(t, errBadPass)
	require.Error(t, errNoUser)
	// Mismo error para ambos casos: sin señal de enumeración de usuarios.
	assert.Equal(t, errBadPass, errNoUser)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaInactiva_Retorna403YNoTocaLastLogin(t *testing.T) {
	repo := newFakeManagerRepo()
	seedManager(t, repo, "carla", "secreta123", false)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	_, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)

	stored, err2 := repo.GetByUsername("carla")
	require.NoError(t, err2)
	assert.Nil(t, stored.LastLogin, "una cuenta inactiva no debe registrar login")
}

func TestLogin_CuentaFirebaseSinHash_NoAutenticaLocalmente(t *testing.T) {
	repo := newFakeManagerRepo()
	m := &entity.Manager{
		ID:          "id-fb",
		Username:    "fbuser",
		Email:       "fb@tienda.test",
		FullName:    "FB User",
		FirebaseUID: "uid-123",
		AuthMethod:  entity.AuthMethodFirebase,
		Role:        entity.RoleManager,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(m))
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	_, err := uc.Login(dto.LoginRequest{Username: "fbuser", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"las cuentas del flujo externo no tienen credencial local")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EnsureDefaultAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureDefaultAdmin_CreaUnaSolaVez(t *testing.T) {
	repo := newFakeManagerRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	created, err := uc.EnsureDefaultAdmin("admin", "superclave", "admin@tienda.test")
	require.NoError(t, err)
	assert.True(t, created, "la primera llamada debe crear la cuenta")

	created, err = uc.EnsureDefaultAdmin("admin", "superclave", "admin@tienda.test")
	require.NoError(t, err)
	assert.False(t, created, "la segunda llamada debe ser un no-op")

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "superclave", admin.PasswordHash,
		"la password nunca se guarda en texto plano")
}

func TestEnsureDefaultAdmin_SinConfiguracion_NoHaceNada(t *testing.T) {
	repo := newFakeManagerRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	created, err := uc.EnsureDefaultAdmin("", "", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, repo.managers)
}

func TestEnsureDefaultAdmin_CarreraAbsorbidaPorConstraint(t *testing.T) {
	repo := newFakeManagerRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	// Simula otra instancia ganando la carrera: el insert devuelve duplicado.
	repo.failNext = domain.ErrUsernameTaken
	created, err := uc.EnsureDefaultAdmin("admin", "superclave", "admin@tienda.test")
	require.NoError(t, err, "el duplicado de la carrera se absorbe como éxito")
	assert.False(t, created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad del hasher: salt aleatorio por llamada
// ──────────────────────────────────────────────────────────────────────────────

func TestBcrypt_MismoPlaintextProduceHashesDistintos(t *testing.T) {
	h1, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	h2, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NotEqual(t, string(h1), string(h2), "cada hash lleva su propio salt")
	assert.NoError(t, bcrypt.CompareHashAndPassword(h1, []byte("secreta123")))
	assert.NoError(t, bcrypt.CompareHashAndPassword(h2, []byte("secreta123")))
}

func TestLoginExitoso_NoExponeHashEnLaRespuesta(t *testing.T) {
	repo := newFakeManagerRepo()
	seedManager(t, repo, "carla", "secreta123", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	out, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "secreta123"})
	require.NoError(t, err)

	// El resumen no tiene campo de hash; verificación estructural básica.
	assert.Equal(t, "carla@tienda.test", out.Manager.Email)
	assert.Equal(t, entity.AuthMethodLocal, out.Manager.AuthMethod)
}
