package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, display_name, is_authorized, roles, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Los roles se guardan como text[] en la misma fila: el conjunto es chico y
// siempre se lee junto al perfil.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un perfil nuevo. Email duplicado devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO user_profiles (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.DisplayName, u.IsAuthorized,
		rolesToStrings(u.Roles), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM user_profiles WHERE id = $1`, id)
}

// GetByEmail obtiene un perfil por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM user_profiles WHERE email = $1`, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	var roles []string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.IsAuthorized,
		&roles, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Roles = stringsToRoles(roles)
	return &u, nil
}

// List devuelve todos los perfiles ordenados por email.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM user_profiles ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var roles []string
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName,
			&u.IsAuthorized, &roles, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Roles = stringsToRoles(roles)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRoles reemplaza el conjunto de roles del usuario.
func (r *UserRepo) UpdateRoles(userID string, roles []entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE user_profiles SET roles = $2, updated_at = now() WHERE id = $1`,
		userID, rolesToStrings(roles))
	if err != nil {
		return fmt.Errorf("update user roles: %w", err)
	}
	return nil
}

// SetAuthorized activa o desactiva la autorización del usuario.
func (r *UserRepo) SetAuthorized(userID string, authorized bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE user_profiles SET is_authorized = $2, updated_at = now() WHERE id = $1`,
		userID, authorized)
	if err != nil {
		return fmt.Errorf("set user authorized: %w", err)
	}
	return nil
}

// Delete elimina un perfil por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func rolesToStrings(roles []entity.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func stringsToRoles(roles []string) []entity.Role {
	out := make([]entity.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, entity.Role(r))
	}
	return out
}
