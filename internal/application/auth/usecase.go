// Package auth registra usuarios y emite tokens de sesión.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

// TokenConfig parámetros de emisión de JWT, tomados de la configuración.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase registro e inicio de sesión.
type UseCase struct {
	userRepo repository.UserRepository
	tokens   TokenConfig
	bus      *events.Bus
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, tokens TokenConfig, bus *events.Bus) *UseCase {
	return &UseCase{userRepo: userRepo, tokens: tokens, bus: bus}
}

// Register crea el perfil con la contraseña hasheada. El usuario nace sin
// autorizar y sin roles: un admin debe habilitarlo antes de que pueda operar.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
		IsAuthorized: false,
		Roles:        nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableUsers)
	resp := toUserResponse(user)
	return &resp, nil
}

// Login valida credenciales y emite un JWT con los roles del usuario.
// Credenciales inválidas devuelven siempre ErrUnauthorized, sin distinguir
// email inexistente de contraseña incorrecta. Un perfil sin habilitar no
// recibe token aunque la contraseña sea correcta.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsAuthorized {
		return nil, domain.ErrForbidden
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}
	token, err := pkgjwt.Generate(uc.tokens.Secret, user.ID, user.Email, roles, uc.tokens.Issuer, uc.tokens.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		IsAuthorized: u.IsAuthorized,
		Roles:        roles,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
