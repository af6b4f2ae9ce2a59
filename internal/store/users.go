package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/drillquiz/drillquiz/internal/creds"
)

// userRepo implements creds.Store on the users table. Usernames are
// normalized on write so the primary key is the case-insensitive identity.
type userRepo struct {
	db *sql.DB
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*creds.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT username, full_name, password, status FROM users WHERE username = ?",
		creds.Normalize(username))

	var u creds.User
	err := row.Scan(&u.Username, &u.FullName, &u.Password, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (r *userRepo) SetStatus(ctx context.Context, username, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET status = ? WHERE username = ?",
		status, creds.Normalize(username))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no such user %q", username)
	}
	return nil
}

func (r *userRepo) Create(ctx context.Context, u *creds.User) error {
	status := u.Status
	if status == "" {
		status = creds.StatusActive
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, full_name, password, status) VALUES (?, ?, ?, ?)",
		creds.Normalize(u.Username), u.FullName, u.Password, status)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]creds.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT username, full_name, password, status FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []creds.User
	for rows.Next() {
		var u creds.User
		if err := rows.Scan(&u.Username, &u.FullName, &u.Password, &u.Status); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
