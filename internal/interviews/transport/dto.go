// Package transport defines request and response types for the interviews API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
)

const dateLayout = "2006-01-02"

// CreateInterviewRequest is the payload for scheduling a new interview.
type CreateInterviewRequest struct {
	CandidateName   string `json:"candidateName" validate:"required,min=2,max=200"`
	MobileNumber    string `json:"mobileNumber" validate:"required,phone10"`
	AlternateNumber string `json:"alternateNumber" validate:"omitempty,phone10"`
	Status          string `json:"status" validate:"omitempty,max=120"`
	InterviewDate   string `json:"interviewDate" validate:"required"`
	InterviewTime   string `json:"interviewTime" validate:"omitempty,max=40"`
	InterviewType   string `json:"interviewType" validate:"omitempty,max=120"`
	JobOpening      string `json:"jobOpening" validate:"omitempty,max=200"`
	City            string `json:"city" validate:"omitempty,max=120"`
	AssignedTo      string `json:"assignedTo" validate:"omitempty,uuid"`
}

// UpdateInterviewRequest is a partial edit; absent fields are untouched.
type UpdateInterviewRequest struct {
	CandidateName   *string `json:"candidateName" validate:"omitempty,min=2,max=200"`
	MobileNumber    *string `json:"mobileNumber" validate:"omitempty,phone10"`
	AlternateNumber *string `json:"alternateNumber" validate:"omitempty,phone10"`
	Status          *string `json:"status" validate:"omitempty,max=120"`
	InterviewDate   *string `json:"interviewDate"`
	InterviewTime   *string `json:"interviewTime" validate:"omitempty,max=40"`
	InterviewType   *string `json:"interviewType" validate:"omitempty,max=120"`
	JobOpening      *string `json:"jobOpening" validate:"omitempty,max=200"`
	City            *string `json:"city" validate:"omitempty,max=120"`
	AssignedTo      *string `json:"assignedTo" validate:"omitempty,uuid"`
}

// UpdateStatusRequest changes only the status token.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=120"`
}

// DuplicateCheckRequest asks whether any existing interview shares a phone
// number with the given candidate numbers.
type DuplicateCheckRequest struct {
	MobileNumber    string `json:"mobileNumber" validate:"required,phone10"`
	AlternateNumber string `json:"alternateNumber" validate:"omitempty,phone10"`
	ExcludeID       string `json:"excludeId" validate:"omitempty,uuid"`
}

// InterviewResponse is the wire form of one interview record.
type InterviewResponse struct {
	ID              uuid.UUID `json:"id"`
	CandidateName   string    `json:"candidateName"`
	MobileNumber    string    `json:"mobileNumber"`
	AlternateNumber string    `json:"alternateNumber,omitempty"`
	Status          string    `json:"status"`
	MainStatus      string    `json:"mainStatus"`
	Bucket          string    `json:"bucket"`
	InterviewDate   string    `json:"interviewDate"`
	InterviewTime   string    `json:"interviewTime,omitempty"`
	InterviewType   string    `json:"interviewType,omitempty"`
	JobOpening      string    `json:"jobOpening,omitempty"`
	City            string    `json:"city,omitempty"`
	AssignedTo      uuid.UUID `json:"assignedTo"`
	CreatedBy       uuid.UUID `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListResponse is a filtered page of interviews.
type ListResponse struct {
	Items []InterviewResponse `json:"items"`
	Total int                 `json:"total"`
}

// CountsResponse carries the tab header totals and the per-status cards.
type CountsResponse struct {
	Tabs     domain.TabCounts     `json:"tabs"`
	Statuses []domain.StatusCount `json:"statuses"`
}

// CreateInterviewResponse is the persisted record plus any advisory
// duplicate matches found before the write.
type CreateInterviewResponse struct {
	Interview  InterviewResponse   `json:"interview"`
	Duplicates []InterviewResponse `json:"duplicates,omitempty"`
	Degraded   bool                `json:"degradedDuplicateCheck,omitempty"`
}

// DuplicateCheckResponse lists matches for a standalone phone check.
type DuplicateCheckResponse struct {
	Items    []InterviewResponse `json:"items"`
	Total    int                 `json:"total"`
	Degraded bool                `json:"degraded,omitempty"`
}

// NewInterviewResponse converts a domain record, deriving bucket via classify.
func NewInterviewResponse(rec domain.Interview, classify func(string) domain.Bucket) InterviewResponse {
	return InterviewResponse{
		ID:              rec.ID,
		CandidateName:   rec.CandidateName,
		MobileNumber:    rec.MobileNumber,
		AlternateNumber: rec.AlternateNumber,
		Status:          rec.Status,
		MainStatus:      rec.StatusMain(),
		Bucket:          string(classify(rec.Status)),
		InterviewDate:   rec.InterviewDate.Format(dateLayout),
		InterviewTime:   rec.InterviewTime,
		InterviewType:   rec.InterviewType,
		JobOpening:      rec.JobOpening,
		City:            rec.City,
		AssignedTo:      rec.AssignedTo,
		CreatedBy:       rec.CreatedBy,
		CreatedAt:       rec.CreatedAt,
	}
}

// NewInterviewResponses converts a slice of domain records.
func NewInterviewResponses(recs []domain.Interview, classify func(string) domain.Bucket) []InterviewResponse {
	items := make([]InterviewResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, NewInterviewResponse(rec, classify))
	}
	return items
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.Validation("date must be in YYYY-MM-DD format")
	}
	return t, nil
}
