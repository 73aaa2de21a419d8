// Package repository provides data access for the status taxonomy.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MainStatusRow is one configured main status as stored.
type MainStatusRow struct {
	ID     uuid.UUID
	Name   string
	Bucket *string
}

// SubStatusRow is one configured sub-status as stored.
type SubStatusRow struct {
	Name string
}

// Repository is the taxonomy source contract.
type Repository interface {
	ListMainStatuses(ctx context.Context) ([]MainStatusRow, error)
	ListSubStatuses(ctx context.Context, mainStatusID uuid.UUID) ([]SubStatusRow, error)
}

// Repo implements Repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new taxonomy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// ListMainStatuses retrieves all main statuses in display order.
func (r *Repo) ListMainStatuses(ctx context.Context) ([]MainStatusRow, error) {
	query := `
		SELECT id, name, lifecycle_bucket
		FROM interview_statuses
		ORDER BY position ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list main statuses: %w", err)
	}
	defer rows.Close()

	var out []MainStatusRow
	for rows.Next() {
		var row MainStatusRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Bucket); err != nil {
			return nil, fmt.Errorf("scan main status: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list main statuses: %w", err)
	}
	return out, nil
}

// ListSubStatuses retrieves the ordered sub-statuses of a main status.
func (r *Repo) ListSubStatuses(ctx context.Context, mainStatusID uuid.UUID) ([]SubStatusRow, error) {
	query := `
		SELECT name
		FROM interview_sub_statuses
		WHERE status_id = $1
		ORDER BY position ASC, name ASC`

	rows, err := r.pool.Query(ctx, query, mainStatusID)
	if err != nil {
		return nil, fmt.Errorf("list sub statuses: %w", err)
	}
	defer rows.Close()

	var out []SubStatusRow
	for rows.Next() {
		var row SubStatusRow
		if err := rows.Scan(&row.Name); err != nil {
			return nil, fmt.Errorf("scan sub status: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sub statuses: %w", err)
	}
	return out, nil
}
