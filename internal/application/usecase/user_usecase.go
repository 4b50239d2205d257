package usecase

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// UserUseCase administración de usuarios: listar, asignar roles y autorizar.
// Todas las operaciones son de admin; el RBAC lo impone la capa HTTP.
type UserUseCase struct {
	userRepo repository.UserRepository
	bus      *events.Bus
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, bus *events.Bus) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, bus: bus}
}

// List devuelve todos los perfiles de usuario.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// GetByID devuelve un perfil.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateRoles reemplaza el conjunto de roles del usuario. Los roles son una
// enumeración cerrada: uno desconocido rechaza la petición entera.
func (uc *UserUseCase) UpdateRoles(id string, in dto.UpdateRolesRequest) (*dto.UserResponse, error) {
	if len(in.Roles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	roles := make([]entity.Role, 0, len(in.Roles))
	for _, r := range in.Roles {
		role := entity.Role(r)
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
		roles = append(roles, role)
	}

	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := uc.userRepo.UpdateRoles(id, roles); err != nil {
		return nil, err
	}
	user.Roles = roles

	uc.bus.Publish(events.TableUsers)
	resp := toUserResponse(user)
	return &resp, nil
}

// SetAuthorized habilita o deshabilita el inicio de sesión del usuario.
func (uc *UserUseCase) SetAuthorized(id string, authorized bool) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := uc.userRepo.SetAuthorized(id, authorized); err != nil {
		return nil, err
	}
	user.IsAuthorized = authorized

	uc.bus.Publish(events.TableUsers)
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete elimina el perfil de usuario.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.userRepo.Delete(id); err != nil {
		return err
	}
	uc.bus.Publish(events.TableUsers)
	return nil
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
