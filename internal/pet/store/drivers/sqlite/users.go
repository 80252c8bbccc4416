package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/moodachu/moodachu/internal/pet/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, display_name, email, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u     domain.User
		email sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Email = mapNullString(email)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = lower(trim(?))`,
		strings.TrimSpace(username))
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, display_name, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.DisplayName, mapStringNull(u.Email), u.CreatedAt, u.UpdatedAt)
	return mapConstraint(err)
}
