package entity

import "time"

// Role enumeración cerrada de roles de la aplicación.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCompras    Role = "compras"    // gestión de compras
	RoleAlmoxarife Role = "almoxarife" // operación del almacén
)

// ValidRole verifica que el rol pertenezca a la enumeración.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleCompras, RoleAlmoxarife:
		return true
	}
	return false
}

// User perfil de usuario. IsAuthorized lo activa un admin tras el registro;
// un usuario sin autorizar no puede iniciar sesión hasta que lo habiliten.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	IsAuthorized bool
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario tiene el rol dado.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}
