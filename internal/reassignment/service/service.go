// Package service implements the reassignment approval workflow.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	interviewdomain "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// InterviewAssigner applies an approved reassignment to the interview record.
type InterviewAssigner interface {
	Reassign(ctx context.Context, id, assignee uuid.UUID) (interviewdomain.Interview, error)
}

// InterviewReader looks up interviews in the current working set.
type InterviewReader interface {
	Get(id uuid.UUID) (interviewdomain.Interview, bool)
}

// NameResolver maps user ids to display names, "Unknown" included.
type NameResolver interface {
	DisplayName(ctx context.Context, id uuid.UUID) string
}

// RequestView is a reassignment request with user names resolved for display.
type RequestView struct {
	repository.Request
	FromUserName    string
	ToUserName      string
	RequestedByName string
	ResolvedByName  string
}

// CreateInput carries the fields for a new reassignment request.
type CreateInput struct {
	InterviewID uuid.UUID
	ToUser      uuid.UUID
	Reason      string
	RequestedBy uuid.UUID
}

type Service struct {
	repo       repository.Repository
	interviews InterviewAssigner
	reader     InterviewReader
	names      NameResolver
	bus        events.Bus
	log        *logger.Logger
}

func New(repo repository.Repository, interviews InterviewAssigner, reader InterviewReader, names NameResolver, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, interviews: interviews, reader: reader, names: names, bus: bus, log: log}
}

// Create opens a pending request for an interview. The current assignee is
// captured from the interview at request time, so the approval later shows
// who the interview was moving away from even if it changes hands meanwhile.
func (s *Service) Create(ctx context.Context, in CreateInput) (RequestView, error) {
	if in.ToUser == uuid.Nil {
		return RequestView{}, apperr.Validation("target user must be set")
	}

	interview, ok := s.reader.Get(in.InterviewID)
	if !ok {
		return RequestView{}, apperr.NotFound("interview not found")
	}
	if interview.AssignedTo == in.ToUser {
		return RequestView{}, apperr.Validation("interview is already assigned to the target user")
	}

	created, err := s.repo.CreateRequest(ctx, repository.Request{
		InterviewID: in.InterviewID,
		FromUser:    interview.AssignedTo,
		ToUser:      in.ToUser,
		Reason:      in.Reason,
		RequestedBy: in.RequestedBy,
	})
	if err != nil {
		return RequestView{}, err
	}
	return s.view(ctx, created), nil
}

// List returns requests, optionally narrowed to one status, with names
// resolved for display.
func (s *Service) List(ctx context.Context, status string) ([]RequestView, error) {
	if status != "" && status != repository.StatusPending &&
		status != repository.StatusApproved && status != repository.StatusRejected {
		return nil, apperr.Validation("unknown request status")
	}

	requests, err := s.repo.ListRequests(ctx, status)
	if err != nil {
		return nil, err
	}

	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, s.view(ctx, req))
	}
	return views, nil
}

// Approve resolves a pending request and moves the interview to the new
// assignee. The status transition is the gate: once a request left pending,
// a second resolve of either kind conflicts.
func (s *Service) Approve(ctx context.Context, id, resolvedBy uuid.UUID) (RequestView, error) {
	resolved, err := s.repo.Resolve(ctx, id, repository.StatusApproved, resolvedBy, "")
	if err != nil {
		return RequestView{}, err
	}

	if _, err := s.interviews.Reassign(ctx, resolved.InterviewID, resolved.ToUser); err != nil {
		// The request is already terminal; the assignment is retried by hand.
		s.log.DatabaseError("reassignment.apply", err)
		return RequestView{}, err
	}

	s.publishResolved(ctx, resolved, true)
	return s.view(ctx, resolved), nil
}

// Reject resolves a pending request without touching the interview. Remarks
// are the approver's note back to the requester.
func (s *Service) Reject(ctx context.Context, id, resolvedBy uuid.UUID, remarks string) (RequestView, error) {
	resolved, err := s.repo.Resolve(ctx, id, repository.StatusRejected, resolvedBy, remarks)
	if err != nil {
		return RequestView{}, err
	}

	s.publishResolved(ctx, resolved, false)
	return s.view(ctx, resolved), nil
}

func (s *Service) publishResolved(ctx context.Context, req repository.Request, approved bool) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.ReassignmentResolved{
		BaseEvent:   events.NewBaseEvent(),
		RequestID:   req.ID,
		InterviewID: req.InterviewID,
		Approved:    approved,
	})
}

func (s *Service) view(ctx context.Context, req repository.Request) RequestView {
	view := RequestView{
		Request:         req,
		FromUserName:    s.names.DisplayName(ctx, req.FromUser),
		ToUserName:      s.names.DisplayName(ctx, req.ToUser),
		RequestedByName: s.names.DisplayName(ctx, req.RequestedBy),
	}
	if req.ResolvedBy != nil {
		view.ResolvedByName = s.names.DisplayName(ctx, *req.ResolvedBy)
	}
	return view
}
