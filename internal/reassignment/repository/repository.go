// Package repository provides data access for reassignment requests.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
)

// Request statuses. Pending is the only state a request can be resolved
// from; approved and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is one interview reassignment request as stored.
type Request struct {
	ID          uuid.UUID
	InterviewID uuid.UUID
	FromUser    uuid.UUID
	ToUser      uuid.UUID
	Reason      string
	Status      string
	Remarks     string
	RequestedBy uuid.UUID
	ResolvedBy  *uuid.UUID
	RequestedAt time.Time
	ResolvedAt  *time.Time
}

// Repository stores reassignment requests. An interview carries at most one
// pending request at a time; creating a second one conflicts.
type Repository interface {
	CreateRequest(ctx context.Context, req Request) (Request, error)
	GetRequest(ctx context.Context, id uuid.UUID) (Request, error)
	ListRequests(ctx context.Context, status string) ([]Request, error)
	// Resolve moves a pending request to a terminal status. A request that
	// is not pending yields a conflict, a missing one a not-found.
	Resolve(ctx context.Context, id uuid.UUID, status string, resolvedBy uuid.UUID, remarks string) (Request, error)
}

const requestColumns = `id, interview_id, from_user, to_user, reason, status,
	remarks, requested_by, resolved_by, requested_at, resolved_at`

type Repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

var _ Repository = (*Repo)(nil)

func (r *Repo) CreateRequest(ctx context.Context, req Request) (Request, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO reassignment_requests (
			id, interview_id, from_user, to_user, reason, status, requested_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+requestColumns,
		req.ID, req.InterviewID, req.FromUser, req.ToUser, req.Reason, StatusPending, req.RequestedBy)
	created, err := scanRequest(row)
	if isUniqueViolation(err) {
		return Request{}, apperr.Conflict("interview already has a pending reassignment request")
	}
	if err != nil {
		return Request{}, apperr.Unavailable("reassignment store unreachable", err)
	}
	return created, nil
}

func (r *Repo) GetRequest(ctx context.Context, id uuid.UUID) (Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM reassignment_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, apperr.NotFound("reassignment request not found")
	}
	if err != nil {
		return Request{}, apperr.Unavailable("reassignment store unreachable", err)
	}
	return req, nil
}

func (r *Repo) ListRequests(ctx context.Context, status string) ([]Request, error) {
	query := `SELECT ` + requestColumns + ` FROM reassignment_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY requested_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Unavailable("reassignment store unreachable", err)
	}
	defer rows.Close()

	requests := make([]Request, 0, 32)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, apperr.Unavailable("reassignment store unreachable", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Unavailable("reassignment store unreachable", err)
	}
	return requests, nil
}

func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, status string, resolvedBy uuid.UUID, remarks string) (Request, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE reassignment_requests
		SET status = $2, resolved_by = $3, remarks = $4, resolved_at = now()
		WHERE id = $1 AND status = $5
		RETURNING `+requestColumns,
		id, status, resolvedBy, remarks, StatusPending)
	req, err := scanRequest(row)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Request{}, apperr.Unavailable("reassignment store unreachable", err)
	}

	// No pending row matched: distinguish a missing request from one
	// already resolved.
	if _, gerr := r.GetRequest(ctx, id); gerr != nil {
		return Request{}, gerr
	}
	return Request{}, apperr.Conflict("reassignment request already resolved")
}

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(
		&req.ID, &req.InterviewID, &req.FromUser, &req.ToUser, &req.Reason, &req.Status,
		&req.Remarks, &req.RequestedBy, &req.ResolvedBy, &req.RequestedAt, &req.ResolvedAt)
	return req, err
}

// 23505 is the Postgres unique_violation code, raised by the partial unique
// index guarding one pending request per interview.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
