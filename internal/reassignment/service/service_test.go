package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	interviewdomain "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

type fakeRepo struct {
	requests map[uuid.UUID]repository.Request
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[uuid.UUID]repository.Request)}
}

func (f *fakeRepo) CreateRequest(_ context.Context, req repository.Request) (repository.Request, error) {
	for _, existing := range f.requests {
		if existing.InterviewID == req.InterviewID && existing.Status == repository.StatusPending {
			return repository.Request{}, apperr.Conflict("interview already has a pending reassignment request")
		}
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.Status = repository.StatusPending
	req.RequestedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRepo) GetRequest(_ context.Context, id uuid.UUID) (repository.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return repository.Request{}, apperr.NotFound("reassignment request not found")
	}
	return req, nil
}

func (f *fakeRepo) ListRequests(_ context.Context, status string) ([]repository.Request, error) {
	var out []repository.Request
	for _, req := range f.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRepo) Resolve(_ context.Context, id uuid.UUID, status string, resolvedBy uuid.UUID, remarks string) (repository.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return repository.Request{}, apperr.NotFound("reassignment request not found")
	}
	if req.Status != repository.StatusPending {
		return repository.Request{}, apperr.Conflict("reassignment request already resolved")
	}
	now := time.Now()
	req.Status = status
	req.ResolvedBy = &resolvedBy
	req.Remarks = remarks
	req.ResolvedAt = &now
	f.requests[id] = req
	return req, nil
}

type fakeInterviews struct {
	records    map[uuid.UUID]interviewdomain.Interview
	reassigned map[uuid.UUID]uuid.UUID
}

func newFakeInterviews(records ...interviewdomain.Interview) *fakeInterviews {
	f := &fakeInterviews{
		records:    make(map[uuid.UUID]interviewdomain.Interview),
		reassigned: make(map[uuid.UUID]uuid.UUID),
	}
	for _, rec := range records {
		f.records[rec.ID] = rec
	}
	return f
}

func (f *fakeInterviews) Reassign(_ context.Context, id, assignee uuid.UUID) (interviewdomain.Interview, error) {
	rec, ok := f.records[id]
	if !ok {
		return interviewdomain.Interview{}, apperr.NotFound("interview not found")
	}
	rec.AssignedTo = assignee
	f.records[id] = rec
	f.reassigned[id] = assignee
	return rec, nil
}

func (f *fakeInterviews) Get(id uuid.UUID) (interviewdomain.Interview, bool) {
	rec, ok := f.records[id]
	return rec, ok
}

type fakeNames struct {
	names map[uuid.UUID]string
}

func (f *fakeNames) DisplayName(_ context.Context, id uuid.UUID) string {
	if name, ok := f.names[id]; ok {
		return name
	}
	return "Unknown"
}

func newTestService(interviews *fakeInterviews, names map[uuid.UUID]string) (*Service, *fakeRepo) {
	repo := newFakeRepo()
	svc := New(repo, interviews, interviews, &fakeNames{names: names}, nil, logger.New("development"))
	return svc, repo
}

func TestApproveMovesInterview(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: from}
	interviews := newFakeInterviews(interview)
	svc, _ := newTestService(interviews, map[uuid.UUID]string{
		from: "Priya Sharma",
		to:   "Rahul Verma",
	})

	created, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID,
		ToUser:      to,
		RequestedBy: from,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.FromUser != from {
		t.Fatalf("request should capture the current assignee, got %s", created.FromUser)
	}

	approver := uuid.New()
	view, err := svc.Approve(context.Background(), created.ID, approver)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if view.Status != repository.StatusApproved {
		t.Fatalf("expected approved, got %q", view.Status)
	}
	if got := interviews.reassigned[interview.ID]; got != to {
		t.Fatalf("interview not moved to target user, got %s", got)
	}
}

func TestResolvedRequestsAreTerminal(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: from}
	svc, _ := newTestService(newFakeInterviews(interview), nil)

	created, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: to, RequestedBy: from,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Reject(context.Background(), created.ID, uuid.New(), ""); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := svc.Approve(context.Background(), created.ID, uuid.New()); apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("approving a rejected request must conflict, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), created.ID, uuid.New(), ""); apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("rejecting twice must conflict, got %v", err)
	}
}

func TestRejectLeavesInterviewUntouched(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: from}
	interviews := newFakeInterviews(interview)
	svc, _ := newTestService(interviews, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: to, RequestedBy: from,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Reject(context.Background(), created.ID, uuid.New(), ""); err != nil {
		t.Fatal(err)
	}
	if len(interviews.reassigned) != 0 {
		t.Fatal("reject must not move the interview")
	}
}

func TestCreateRejectsNoOpReassignment(t *testing.T) {
	assignee := uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: assignee}
	svc, _ := newTestService(newFakeInterviews(interview), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: assignee, RequestedBy: assignee,
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("reassigning to the current assignee must be rejected, got %v", err)
	}
}

func TestSecondPendingRequestConflicts(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: from}
	svc, _ := newTestService(newFakeInterviews(interview), nil)

	if _, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: to, RequestedBy: from,
	}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: uuid.New(), RequestedBy: from,
	})
	if apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("second pending request for the same interview must conflict, got %v", err)
	}
}

func TestRejectCarriesRemarks(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: from}
	svc, _ := newTestService(newFakeInterviews(interview), nil)

	created, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: to, RequestedBy: from,
	})
	if err != nil {
		t.Fatal(err)
	}

	view, err := svc.Reject(context.Background(), created.ID, uuid.New(), "candidate withdrew")
	if err != nil {
		t.Fatal(err)
	}
	if view.Remarks != "candidate withdrew" {
		t.Fatalf("remarks not carried through, got %q", view.Remarks)
	}
}

func TestViewPreservesUnknownNames(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	interview := interviewdomain.Interview{ID: uuid.New(), AssignedTo: from}
	svc, _ := newTestService(newFakeInterviews(interview), map[uuid.UUID]string{
		to: "Rahul Verma",
	})

	created, err := svc.Create(context.Background(), CreateInput{
		InterviewID: interview.ID, ToUser: to, RequestedBy: from,
	})
	if err != nil {
		t.Fatal(err)
	}

	if created.FromUserName != "Unknown" {
		t.Fatalf("missing user must display as Unknown, got %q", created.FromUserName)
	}
	if created.ToUserName != "Rahul Verma" {
		t.Fatalf("expected Rahul Verma, got %q", created.ToUserName)
	}
}
