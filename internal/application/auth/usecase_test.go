package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) UpdateRoles(userID string, roles []entity.Role) error {
	return nil
}
func (r *fakeUserRepo) SetAuthorized(userID string, authorized bool) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.IsAuthorized = authorized
		}
	}
	return nil
}
func (r *fakeUserRepo) Delete(id string) error { return nil }

func buildAuth() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.TokenConfig{
		Secret:     "test-secret",
		Issuer:     "almacen-api-test",
		ExpMinutes: 60,
	}, events.NewBus())
	return uc, repo
}

const (
	testEmail    = "operario@almacen.test"
	testPassword = "contraseña-larga"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NaceSinAutorizarYSinRoles(t *testing.T) {
	uc, _ := buildAuth()

	out, err := uc.Register(dto.RegisterRequest{Email: testEmail, Password: testPassword})

	require.NoError(t, err)
	assert.False(t, out.IsAuthorized)
	assert.Empty(t, out.Roles)
}

func TestRegister_EmailDuplicadoRechazado(t *testing.T) {
	uc, _ := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: testEmail, Password: "otra-clave-123"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un perfil recién registrado no recibe token aunque la contraseña sea
// correcta: primero un admin debe habilitarlo.
func TestLogin_PerfilSinHabilitarNoRecibeToken(t *testing.T) {
	uc, _ := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, out)
}

func TestLogin_PerfilHabilitadoRecibeToken(t *testing.T) {
	uc, repo := buildAuth()
	registered, err := uc.Register(dto.RegisterRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NoError(t, repo.SetAuthorized(registered.ID, true))

	out, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, testEmail, out.User.Email)
}

// Email inexistente y contraseña incorrecta devuelven el mismo error.
func TestLogin_CredencialesInvalidasUniformes(t *testing.T) {
	uc, repo := buildAuth()
	registered, err := uc.Register(dto.RegisterRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NoError(t, repo.SetAuthorized(registered.ID, true))

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@almacen.test", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: "clave-equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
