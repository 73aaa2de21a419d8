package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
)

const interviewColumns = `id, candidate_name, mobile_number, alternate_number, status,
	interview_date, interview_time, interview_type, job_opening, city,
	assigned_to, created_by, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

var _ Store = (*Repo)(nil)

func (r *Repo) ListInterviews(ctx context.Context) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM interviews ORDER BY interview_date DESC, created_at DESC`, interviewColumns))
	if err != nil {
		return nil, apperr.Unavailable("interview store unreachable", err)
	}
	defer rows.Close()
	return scanInterviews(rows)
}

func (r *Repo) GetInterview(ctx context.Context, id uuid.UUID) (domain.Interview, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM interviews WHERE id = $1`, interviewColumns), id)
	rec, err := scanInterview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Interview{}, apperr.NotFound("interview not found")
	}
	if err != nil {
		return domain.Interview{}, apperr.Unavailable("interview store unreachable", err)
	}
	return rec, nil
}

func (r *Repo) CreateInterview(ctx context.Context, rec domain.Interview) (domain.Interview, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO interviews (
			id, candidate_name, mobile_number, alternate_number, status,
			interview_date, interview_time, interview_type, job_opening, city,
			assigned_to, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`, interviewColumns),
		rec.ID, rec.CandidateName, rec.MobileNumber, rec.AlternateNumber, rec.Status,
		rec.InterviewDate, rec.InterviewTime, rec.InterviewType, rec.JobOpening, rec.City,
		rec.AssignedTo, rec.CreatedBy)
	created, err := scanInterview(row)
	if err != nil {
		return domain.Interview{}, apperr.Unavailable("interview store unreachable", err)
	}
	return created, nil
}

func (r *Repo) UpdateInterview(ctx context.Context, id uuid.UUID, fields UpdateFields) (domain.Interview, error) {
	set := make([]string, 0, 10)
	args := make([]any, 0, 11)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.CandidateName != nil {
		add("candidate_name", *fields.CandidateName)
	}
	if fields.MobileNumber != nil {
		add("mobile_number", *fields.MobileNumber)
	}
	if fields.AlternateNumber != nil {
		add("alternate_number", *fields.AlternateNumber)
	}
	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.InterviewDate != nil {
		add("interview_date", *fields.InterviewDate)
	}
	if fields.InterviewTime != nil {
		add("interview_time", *fields.InterviewTime)
	}
	if fields.InterviewType != nil {
		add("interview_type", *fields.InterviewType)
	}
	if fields.JobOpening != nil {
		add("job_opening", *fields.JobOpening)
	}
	if fields.City != nil {
		add("city", *fields.City)
	}
	if fields.AssignedTo != nil {
		add("assigned_to", *fields.AssignedTo)
	}
	if len(set) == 0 {
		return r.GetInterview(ctx, id)
	}
	args = append(args, id)
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`UPDATE interviews SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), interviewColumns), args...)
	rec, err := scanInterview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Interview{}, apperr.NotFound("interview not found")
	}
	if err != nil {
		return domain.Interview{}, apperr.Unavailable("interview store unreachable", err)
	}
	return rec, nil
}

func (r *Repo) FindByPhone(ctx context.Context, phoneNumber string) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM interviews
		WHERE mobile_number = $1 OR alternate_number = $1
		ORDER BY created_at DESC`, interviewColumns), phoneNumber)
	if err != nil {
		return nil, apperr.Unavailable("interview store unreachable", err)
	}
	defer rows.Close()
	return scanInterviews(rows)
}

func scanInterviews(rows pgx.Rows) ([]domain.Interview, error) {
	records := make([]domain.Interview, 0, 64)
	for rows.Next() {
		rec, err := scanInterview(rows)
		if err != nil {
			return nil, apperr.Unavailable("interview store unreachable", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Unavailable("interview store unreachable", err)
	}
	return records, nil
}

func scanInterview(row pgx.Row) (domain.Interview, error) {
	var rec domain.Interview
	err := row.Scan(
		&rec.ID, &rec.CandidateName, &rec.MobileNumber, &rec.AlternateNumber, &rec.Status,
		&rec.InterviewDate, &rec.InterviewTime, &rec.InterviewType, &rec.JobOpening, &rec.City,
		&rec.AssignedTo, &rec.CreatedBy, &rec.CreatedAt)
	return rec, err
}
