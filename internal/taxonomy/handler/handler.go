// Package handler provides HTTP handlers for the status taxonomy.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy/transport"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
)

// Handler handles HTTP requests for the taxonomy.
type Handler struct {
	svc *service.Service
}

// New creates a new taxonomy handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// List returns the ordered main statuses with their sub-statuses.
// GET /api/v1/statuses
func (h *Handler) List(c *gin.Context) {
	snap := h.svc.Store().Snapshot()

	items := make([]transport.MainStatusResponse, 0, len(snap.Mains()))
	for _, main := range snap.Mains() {
		item := transport.MainStatusResponse{
			Name:        main.Name,
			Bucket:      string(main.Bucket),
			SubStatuses: make([]string, 0, len(main.Subs)),
		}
		for _, sub := range main.Subs {
			item.SubStatuses = append(item.SubStatuses, sub.Name)
		}
		items = append(items, item)
	}

	httpkit.OK(c, transport.StatusListResponse{Items: items, Total: len(items)})
}

// SubStatuses returns the ordered sub-statuses of one main status.
// GET /api/v1/statuses/:main/substatuses
func (h *Handler) SubStatuses(c *gin.Context) {
	main := c.Param("main")
	if main == "" {
		httpkit.Error(c, http.StatusBadRequest, "main status is required", nil)
		return
	}

	subs := h.svc.Store().Snapshot().Subs(main)
	names := make([]string, 0, len(subs))
	for _, sub := range subs {
		names = append(names, sub.Name)
	}
	httpkit.OK(c, gin.H{"items": names, "total": len(names)})
}

// Search matches main and sub names case-insensitively.
// GET /api/v1/statuses/search?q=
func (h *Handler) Search(c *gin.Context) {
	hits := h.svc.Store().Snapshot().Search(c.Query("q"))

	items := make([]transport.SearchHitResponse, 0, len(hits))
	for _, hit := range hits {
		items = append(items, transport.SearchHitResponse{
			Level:  string(hit.Level),
			Label:  hit.Label,
			Parent: hit.Parent,
		})
	}
	httpkit.OK(c, transport.SearchResponse{Items: items, Total: len(items)})
}

// Refresh forces a full taxonomy reload.
// POST /api/v1/admin/statuses/refresh
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.svc.Refresh(c.Request.Context()); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"status": "reloaded"})
}
