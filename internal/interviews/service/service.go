// Package service implements interview lifecycle operations on top of the
// collection manager and the interview store.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/collection"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/phone"
)

// DefaultStatus is assigned to interviews created without one.
const DefaultStatus = "New"

// CreateInput carries the validated fields for a new interview.
type CreateInput struct {
	CandidateName   string
	MobileNumber    string
	AlternateNumber string
	Status          string
	InterviewDate   time.Time
	InterviewTime   string
	InterviewType   string
	JobOpening      string
	City            string
	AssignedTo      uuid.UUID
	CreatedBy       uuid.UUID
}

// UpdateInput carries a partial edit; nil fields are untouched.
type UpdateInput struct {
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

// CreateResult is the persisted record plus the advisory duplicate report
// computed before the write.
type CreateResult struct {
	Interview  domain.Interview
	Duplicates DuplicateReport
}

type Service struct {
	store      repository.Store
	collection *collection.Manager
	detector   *Detector
	log        *logger.Logger
}

func NewService(store repository.Store, coll *collection.Manager, detector *Detector, log *logger.Logger) *Service {
	return &Service{store: store, collection: coll, detector: detector, log: log}
}

// Collection exposes the working set for read handlers.
func (s *Service) Collection() *collection.Manager {
	return s.collection
}

// List applies a tab and facets to the current working set.
func (s *Service) List(tab domain.Tab, facets domain.Facets) []domain.Interview {
	return s.collection.Filter(tab, facets)
}

// Counts aggregates tab totals and per-status cards over the working set.
func (s *Service) Counts() (domain.TabCounts, []domain.StatusCount) {
	return s.collection.Counts()
}

// Reload refreshes the working set from the store.
func (s *Service) Reload(ctx context.Context) error {
	return s.collection.Reload(ctx)
}

// Create validates phones, runs the advisory duplicate check, persists the
// record, and refreshes the working set. Duplicate matches never block the
// write; they ride along in the result.
func (s *Service) Create(ctx context.Context, in CreateInput) (CreateResult, error) {
	mobile, alternate, err := normalizePhones(in.MobileNumber, in.AlternateNumber)
	if err != nil {
		return CreateResult{}, err
	}

	report := s.detector.CheckPhones(ctx, uuid.Nil, mobile, alternate)

	rec := domain.Interview{
		CandidateName:   in.CandidateName,
		MobileNumber:    mobile,
		AlternateNumber: alternate,
		Status:          in.Status,
		InterviewDate:   startOfDay(in.InterviewDate),
		InterviewTime:   in.InterviewTime,
		InterviewType:   in.InterviewType,
		JobOpening:      in.JobOpening,
		City:            in.City,
		AssignedTo:      in.AssignedTo,
		CreatedBy:       in.CreatedBy,
	}
	if rec.Status == "" {
		rec.Status = DefaultStatus
	}
	if rec.AssignedTo == uuid.Nil {
		rec.AssignedTo = in.CreatedBy
	}

	created, err := s.store.CreateInterview(ctx, rec)
	if err != nil {
		return CreateResult{}, err
	}

	if err := s.collection.Reload(ctx); err != nil {
		s.log.DatabaseError("interviews.reload_after_create", err)
	}
	return CreateResult{Interview: created, Duplicates: report}, nil
}

// Update applies a partial edit under the record's mutation lock, so two
// edits of the same interview never interleave. The returned record is the
// store's post-update row, not a local patch.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (domain.Interview, DuplicateReport, error) {
	current, err := s.store.GetInterview(ctx, id)
	if err != nil {
		return domain.Interview{}, DuplicateReport{}, err
	}

	mobile := current.MobileNumber
	if in.MobileNumber != nil {
		mobile = *in.MobileNumber
	}
	alternate := current.AlternateNumber
	if in.AlternateNumber != nil {
		alternate = *in.AlternateNumber
	}
	mobile, alternate, err = normalizePhones(mobile, alternate)
	if err != nil {
		return domain.Interview{}, DuplicateReport{}, err
	}

	var report DuplicateReport
	if in.MobileNumber != nil || in.AlternateNumber != nil {
		report = s.detector.CheckPhones(ctx, id, mobile, alternate)
	}

	fields := repository.UpdateFields{
		CandidateName: in.CandidateName,
		Status:        in.Status,
		InterviewTime: in.InterviewTime,
		InterviewType: in.InterviewType,
		JobOpening:    in.JobOpening,
		City:          in.City,
		AssignedTo:    in.AssignedTo,
	}
	if in.MobileNumber != nil {
		fields.MobileNumber = &mobile
	}
	if in.AlternateNumber != nil {
		fields.AlternateNumber = &alternate
	}
	if in.InterviewDate != nil {
		day := startOfDay(*in.InterviewDate)
		fields.InterviewDate = &day
	}

	// The reload stays under the lock so a later edit of the same record
	// cannot land between this write and the snapshot that reflects it.
	var updated domain.Interview
	err = s.collection.WithRecordLock(id, func() error {
		var uerr error
		updated, uerr = s.store.UpdateInterview(ctx, id, fields)
		if uerr != nil {
			return uerr
		}
		if rerr := s.collection.Reload(ctx); rerr != nil {
			s.log.DatabaseError("interviews.reload_after_update", rerr)
		}
		return nil
	})
	if err != nil {
		return domain.Interview{}, DuplicateReport{}, err
	}
	return updated, report, nil
}

// Reassign moves an interview to a new assignee.
func (s *Service) Reassign(ctx context.Context, id, assignee uuid.UUID) (domain.Interview, error) {
	if assignee == uuid.Nil {
		return domain.Interview{}, apperr.Validation("assignee must be set")
	}
	updated, _, err := s.Update(ctx, id, UpdateInput{AssignedTo: &assignee})
	return updated, err
}

// UpdateStatus is the single-field edit behind status pickers.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.Interview, error) {
	if status == "" {
		return domain.Interview{}, apperr.Validation("status must not be empty")
	}
	updated, _, err := s.Update(ctx, id, UpdateInput{Status: &status})
	return updated, err
}

// normalizePhones parses both numbers down to their 10-digit national form
// before any comparison, so "+91 98765-43210" and "9876543210" are the same
// number everywhere downstream. The alternate number is optional.
func normalizePhones(mobile, alternate string) (string, string, error) {
	normMobile, ok := phone.National(mobile)
	if !ok {
		return "", "", apperr.Validation("mobile number must be a 10-digit number")
	}
	if alternate == "" {
		return normMobile, "", nil
	}
	normAlternate, ok := phone.National(alternate)
	if !ok {
		return "", "", apperr.Validation("alternate number must be a 10-digit number")
	}
	if normAlternate == normMobile {
		return "", "", apperr.Validation("alternate number must differ from the mobile number")
	}
	return normMobile, normAlternate, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
