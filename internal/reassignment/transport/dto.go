// Package transport defines request and response types for the reassignment API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/service"
)

// CreateRequest opens a new reassignment request.
type CreateRequest struct {
	InterviewID string `json:"interviewId" validate:"required,uuid"`
	ToUser      string `json:"toUser" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"omitempty,max=500"`
}

// RejectRequest optionally carries the approver's remarks.
type RejectRequest struct {
	Remarks string `json:"remarks" validate:"omitempty,max=500"`
}

// RequestResponse is the wire form of one reassignment request.
type RequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	InterviewID     uuid.UUID  `json:"interviewId"`
	FromUser        uuid.UUID  `json:"fromUser"`
	FromUserName    string     `json:"fromUserName"`
	ToUser          uuid.UUID  `json:"toUser"`
	ToUserName      string     `json:"toUserName"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	Remarks         string     `json:"remarks,omitempty"`
	RequestedBy     uuid.UUID  `json:"requestedBy"`
	RequestedByName string     `json:"requestedByName"`
	ResolvedBy      *uuid.UUID `json:"resolvedBy,omitempty"`
	ResolvedByName  string     `json:"resolvedByName,omitempty"`
	RequestedAt     time.Time  `json:"requestedAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

// ListResponse is a page of reassignment requests.
type ListResponse struct {
	Items []RequestResponse `json:"items"`
	Total int               `json:"total"`
}

// NewRequestResponse converts a resolved service view.
func NewRequestResponse(view service.RequestView) RequestResponse {
	return RequestResponse{
		ID:              view.ID,
		InterviewID:     view.InterviewID,
		FromUser:        view.FromUser,
		FromUserName:    view.FromUserName,
		ToUser:          view.ToUser,
		ToUserName:      view.ToUserName,
		Reason:          view.Reason,
		Status:          view.Status,
		Remarks:         view.Remarks,
		RequestedBy:     view.RequestedBy,
		RequestedByName: view.RequestedByName,
		ResolvedBy:      view.ResolvedBy,
		ResolvedByName:  view.ResolvedByName,
		RequestedAt:     view.RequestedAt,
		ResolvedAt:      view.ResolvedAt,
	}
}

// NewRequestResponses converts a slice of service views.
func NewRequestResponses(views []service.RequestView) []RequestResponse {
	items := make([]RequestResponse, 0, len(views))
	for _, view := range views {
		items = append(items, NewRequestResponse(view))
	}
	return items
}
