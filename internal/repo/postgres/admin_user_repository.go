package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.AdminUserRepository = (*AdminUserRepository)(nil)

type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

// FindByEmail — только активные учётные записи.
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, email, password_hash, full_name, role, is_active, last_login
		FROM admin_users
		WHERE email = $1 AND is_active
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.IsActive, &u.LastLogin)
	if err != nil {
		return nil, mapErr("select admin user", err)
	}
	return &u, nil
}

func (r *AdminUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	if _, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login = $2 WHERE id = $1`, id, at); err != nil {
		return mapErr("update last login", err)
	}
	return nil
}

// UpsertAdmin — создать администратора или сменить пароль/имя существующему (cmd/migrate).
func (r *AdminUserRepository) UpsertAdmin(ctx context.Context, email, passwordHash, fullName, role string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO admin_users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			is_active = TRUE
		RETURNING id::text
	`, email, passwordHash, fullName, role).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert admin: %w", err)
	}
	return id, nil
}
