// Package reassignment provides the reassignment workflow module: requests
// to move an interview between recruiters, resolved by approvers.
package reassignment

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	apphttp "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/handler"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/validator"
)

// Module is the reassignment bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the reassignment workflow against the interview service
// and the user directory.
func NewModule(
	pool *pgxpool.Pool,
	interviews service.InterviewAssigner,
	reader service.InterviewReader,
	names service.NameResolver,
	bus events.Bus,
	log *logger.Logger,
	validate *validator.Validator,
) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, interviews, reader, names, bus, log)
	h := handler.New(svc, validate)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "reassignment"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts reassignment routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/reassignments")
	group.POST("", httpkit.RequireCapability(httpkit.CapRequestReassignments), m.handler.Create)
	group.GET("", httpkit.RequireCapability(httpkit.CapViewInterviews), m.handler.List)
	group.POST("/:id/approve", httpkit.RequireCapability(httpkit.CapResolveReassignments), m.handler.Approve)
	group.POST("/:id/reject", httpkit.RequireCapability(httpkit.CapResolveReassignments), m.handler.Reject)
}

var _ apphttp.Module = (*Module)(nil)
