// Package handler provides HTTP handlers for reassignment requests.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/transport"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/validator"
)

// Handler handles HTTP requests for reassignment requests.
type Handler struct {
	svc      *service.Service
	validate *validator.Validator
}

// New creates a new reassignment handler.
func New(svc *service.Service, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

// Create opens a pending reassignment request.
// POST /api/v1/reassignments
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid interview id", nil)
		return
	}
	toUser, err := uuid.Parse(req.ToUser)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid target user id", nil)
		return
	}

	view, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		InterviewID: interviewID,
		ToUser:      toUser,
		Reason:      req.Reason,
		RequestedBy: identity.UserID(),
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, transport.NewRequestResponse(view))
}

// List returns reassignment requests, optionally by status.
// GET /api/v1/reassignments?status=
func (h *Handler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if httpkit.HandleError(c, err) {
		return
	}
	items := transport.NewRequestResponses(views)
	httpkit.OK(c, transport.ListResponse{Items: items, Total: len(items)})
}

// Approve resolves a pending request and moves the interview.
// POST /api/v1/reassignments/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	h.resolve(c, func(ctx context.Context, id, resolvedBy uuid.UUID) (service.RequestView, error) {
		return h.svc.Approve(ctx, id, resolvedBy)
	})
}

// Reject resolves a pending request without touching the interview. The body
// may carry remarks back to the requester.
// POST /api/v1/reassignments/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	var req transport.RejectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
		if err := h.validate.Struct(req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
	}

	h.resolve(c, func(ctx context.Context, id, resolvedBy uuid.UUID) (service.RequestView, error) {
		return h.svc.Reject(ctx, id, resolvedBy, req.Remarks)
	})
}

func (h *Handler) resolve(c *gin.Context, fn func(ctx context.Context, id, resolvedBy uuid.UUID) (service.RequestView, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request id", nil)
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	view, err := fn(c.Request.Context(), id, identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NewRequestResponse(view))
}
