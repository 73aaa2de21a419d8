// Package repository provides data access for interview records.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
)

// UpdateFields is a partial interview update; nil fields are left untouched.
type UpdateFields struct {
	CandidateName   *string
	MobileNumber    *string
	AlternateNumber *string
	Status          *string
	InterviewDate   *time.Time
	InterviewTime   *string
	InterviewType   *string
	JobOpening      *string
	City            *string
	AssignedTo      *uuid.UUID
}

// Store is the narrow contract the engine consumes for interview records.
// The engine never assumes more than a full snapshot plus record-level
// mutations; the authoritative post-update record always comes back from
// the store, not from a local patch.
type Store interface {
	ListInterviews(ctx context.Context) ([]domain.Interview, error)
	GetInterview(ctx context.Context, id uuid.UUID) (domain.Interview, error)
	CreateInterview(ctx context.Context, rec domain.Interview) (domain.Interview, error)
	UpdateInterview(ctx context.Context, id uuid.UUID, fields UpdateFields) (domain.Interview, error)
	// FindByPhone matches a number against both phone fields of every record.
	FindByPhone(ctx context.Context, phoneNumber string) ([]domain.Interview, error)
}
