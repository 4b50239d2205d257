package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia para perfiles de usuario.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	// UpdateRoles reemplaza el conjunto de roles del usuario.
	UpdateRoles(userID string, roles []entity.Role) error
	SetAuthorized(userID string, authorized bool) error
	Delete(id string) error
}
