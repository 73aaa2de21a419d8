// Package taxonomy provides the status taxonomy bounded context module.
// It loads the admin-configured status hierarchy and serves classification
// and navigation views of it.
package taxonomy

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	apphttp "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy/handler"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// Module is the taxonomy bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	store   *service.Store
}

// NewModule creates and initializes the taxonomy module with all its dependencies.
func NewModule(pool *pgxpool.Pool, bus events.Bus, log *logger.Logger) *Module {
	repo := repository.New(pool)
	store := service.NewStore()
	svc := service.New(repo, store, bus, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "taxonomy"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Store returns the snapshot store, shared read-only with the classifier.
func (m *Module) Store() *service.Store {
	return m.store
}

// Load performs the initial taxonomy load at startup.
func (m *Module) Load(ctx context.Context) error {
	return m.service.Refresh(ctx)
}

// RegisterRoutes mounts taxonomy routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/statuses")
	group.GET("", m.handler.List)
	group.GET("/search", m.handler.Search)
	group.GET("/:main/substatuses", m.handler.SubStatuses)

	adminGroup := ctx.Admin.Group("/statuses")
	adminGroup.POST("/refresh", httpkit.RequireCapability(httpkit.CapManageTaxonomy), m.handler.Refresh)
}

var _ apphttp.Module = (*Module)(nil)
