// Package repository provides data access for portal users.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
)

// UserRow is one portal user as stored.
type UserRow struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// Repository reads portal users.
type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (UserRow, error)
	ListUsers(ctx context.Context) ([]UserRow, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

var _ Repository = (*Repo)(nil)

func (r *Repo) GetUser(ctx context.Context, id uuid.UUID) (UserRow, error) {
	var row UserRow
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, role FROM users WHERE id = $1`, id).
		Scan(&row.ID, &row.Name, &row.Email, &row.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return UserRow{}, apperr.NotFound("user not found")
	}
	if err != nil {
		return UserRow{}, apperr.Unavailable("user store unreachable", err)
	}
	return row, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]UserRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, role FROM users ORDER BY name`)
	if err != nil {
		return nil, apperr.Unavailable("user store unreachable", err)
	}
	defer rows.Close()

	users := make([]UserRow, 0, 32)
	for rows.Next() {
		var row UserRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Role); err != nil {
			return nil, apperr.Unavailable("user store unreachable", err)
		}
		users = append(users, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Unavailable("user store unreachable", err)
	}
	return users, nil
}
