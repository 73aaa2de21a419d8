// Package handler provides HTTP handlers for interview records.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/transport"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/validator"
)

// Handler handles HTTP requests for interviews.
type Handler struct {
	svc      *service.Service
	detector *service.Detector
	validate *validator.Validator
}

// New creates a new interviews handler.
func New(svc *service.Service, detector *service.Detector, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, detector: detector, validate: validate}
}

// List returns the interviews visible under a tab plus facets.
// GET /api/v1/interviews?tab=&status=&dateFrom=&dateTo=&createdBy=&type=&jobOpening=&search=
func (h *Handler) List(c *gin.Context) {
	facets, err := parseFacets(c)
	if httpkit.HandleError(c, err) {
		return
	}

	records := h.svc.List(domain.ParseTab(c.Query("tab")), facets)
	items := transport.NewInterviewResponses(records, h.svc.Collection().Classify)
	httpkit.OK(c, transport.ListResponse{Items: items, Total: len(items)})
}

// Counts returns the tab totals and per-status cards.
// GET /api/v1/interviews/counts
func (h *Handler) Counts(c *gin.Context) {
	tabs, statuses := h.svc.Counts()
	httpkit.OK(c, transport.CountsResponse{Tabs: tabs, Statuses: statuses})
}

// Get returns one interview by id.
// GET /api/v1/interviews/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid interview id", nil)
		return
	}

	rec, ok := h.svc.Collection().Get(id)
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "interview not found", nil)
		return
	}
	httpkit.OK(c, transport.NewInterviewResponse(rec, h.svc.Collection().Classify))
}

// Create schedules a new interview and reports advisory duplicates.
// POST /api/v1/interviews
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, err := transport.ParseDate(req.InterviewDate)
	if httpkit.HandleError(c, err) {
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	in := service.CreateInput{
		CandidateName:   req.CandidateName,
		MobileNumber:    req.MobileNumber,
		AlternateNumber: req.AlternateNumber,
		Status:          req.Status,
		InterviewDate:   date,
		InterviewTime:   req.InterviewTime,
		InterviewType:   req.InterviewType,
		JobOpening:      req.JobOpening,
		City:            req.City,
		CreatedBy:       identity.UserID(),
	}
	if req.AssignedTo != "" {
		assignee, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid assignee id", nil)
			return
		}
		in.AssignedTo = assignee
	}

	result, err := h.svc.Create(c.Request.Context(), in)
	if httpkit.HandleError(c, err) {
		return
	}

	classify := h.svc.Collection().Classify
	httpkit.Created(c, transport.CreateInterviewResponse{
		Interview:  transport.NewInterviewResponse(result.Interview, classify),
		Duplicates: transport.NewInterviewResponses(result.Duplicates.Matches, classify),
		Degraded:   result.Duplicates.Degraded,
	})
}

// Update applies a partial edit to one interview.
// PATCH /api/v1/interviews/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid interview id", nil)
		return
	}

	var req transport.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	in := service.UpdateInput{
		CandidateName:   req.CandidateName,
		MobileNumber:    req.MobileNumber,
		AlternateNumber: req.AlternateNumber,
		Status:          req.Status,
		InterviewTime:   req.InterviewTime,
		InterviewType:   req.InterviewType,
		JobOpening:      req.JobOpening,
		City:            req.City,
	}
	if req.InterviewDate != nil {
		date, err := transport.ParseDate(*req.InterviewDate)
		if httpkit.HandleError(c, err) {
			return
		}
		in.InterviewDate = &date
	}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid assignee id", nil)
			return
		}
		in.AssignedTo = &assignee
	}

	updated, report, err := h.svc.Update(c.Request.Context(), id, in)
	if httpkit.HandleError(c, err) {
		return
	}

	classify := h.svc.Collection().Classify
	httpkit.OK(c, transport.CreateInterviewResponse{
		Interview:  transport.NewInterviewResponse(updated, classify),
		Duplicates: transport.NewInterviewResponses(report.Matches, classify),
		Degraded:   report.Degraded,
	})
}

// UpdateStatus changes only the status token of one interview.
// PATCH /api/v1/interviews/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid interview id", nil)
		return
	}

	var req transport.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NewInterviewResponse(updated, h.svc.Collection().Classify))
}

// CheckDuplicates runs the standalone phone duplicate check.
// POST /api/v1/interviews/check-duplicates
func (h *Handler) CheckDuplicates(c *gin.Context) {
	var req transport.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	exclude := uuid.Nil
	if req.ExcludeID != "" {
		parsed, err := uuid.Parse(req.ExcludeID)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid exclude id", nil)
			return
		}
		exclude = parsed
	}

	report := h.detector.CheckPhones(c.Request.Context(), exclude, req.MobileNumber, req.AlternateNumber)
	items := transport.NewInterviewResponses(report.Matches, h.svc.Collection().Classify)
	httpkit.OK(c, transport.DuplicateCheckResponse{Items: items, Total: len(items), Degraded: report.Degraded})
}

// Reload forces a full refresh of the working set from the store.
// POST /api/v1/interviews/reload
func (h *Handler) Reload(c *gin.Context) {
	if err := h.svc.Reload(c.Request.Context()); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"status": "reloaded", "total": len(h.svc.Collection().Snapshot())})
}

func parseFacets(c *gin.Context) (domain.Facets, error) {
	facets := domain.Facets{
		Statuses:    c.QueryArray("status"),
		Types:       c.QueryArray("type"),
		JobOpenings: c.QueryArray("jobOpening"),
		Search:      c.Query("search"),
	}

	if raw := c.Query("dateFrom"); raw != "" {
		from, err := transport.ParseDate(raw)
		if err != nil {
			return domain.Facets{}, err
		}
		facets.DateFrom = &from
	}
	if raw := c.Query("dateTo"); raw != "" {
		to, err := transport.ParseDate(raw)
		if err != nil {
			return domain.Facets{}, err
		}
		facets.DateTo = &to
	}
	if raw := c.Query("createdBy"); raw != "" {
		creator, err := uuid.Parse(raw)
		if err != nil {
			return domain.Facets{}, apperr.Validation("createdBy must be a valid id")
		}
		facets.CreatedBy = &creator
	}
	return facets, nil
}
