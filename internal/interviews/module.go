// Package interviews provides the interview bounded context module: the
// working-set collection, tab and facet filtering, counts, the phone
// duplicate detector, and the CRUD surface over interview records.
package interviews

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	apphttp "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/collection"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/handler"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/validator"
)

// Module is the interviews bounded context module implementing http.Module.
type Module struct {
	handler    *handler.Handler
	service    *service.Service
	collection *collection.Manager
	log        *logger.Logger
}

// NewModule wires the interviews context. The taxonomy resolver comes from
// the taxonomy module's store so classification always sees the latest
// admin-configured hierarchy.
func NewModule(
	pool *pgxpool.Pool,
	bus events.Bus,
	log *logger.Logger,
	taxonomy domain.TaxonomyResolver,
	cfg config.ClassifierConfig,
	validate *validator.Validator,
) (*Module, error) {
	classifier, err := domain.NewClassifier(domain.ClassifierOptions{
		Taxonomy:                  taxonomy,
		TaxonomyOverridesKeywords: cfg.GetTaxonomyOverridesKeywords(),
		RulesPath:                 cfg.GetClassifierRulesPath(),
	})
	if err != nil {
		return nil, err
	}

	repo := repository.NewRepo(pool)
	coll := collection.NewManager(repo, classifier, bus, log)
	detector := service.NewDetector(repo, coll, log)
	svc := service.NewService(repo, coll, detector, log)
	h := handler.New(svc, detector, validate)

	return &Module{
		handler:    h,
		service:    svc,
		collection: coll,
		log:        log,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "interviews"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Collection returns the working-set manager.
func (m *Module) Collection() *collection.Manager {
	return m.collection
}

// Load performs the initial working-set load at startup. A failed load is
// logged, not fatal; the collection stays empty until the next refresh.
func (m *Module) Load(ctx context.Context) {
	if err := m.collection.Reload(ctx); err != nil {
		m.log.DegradedPath("interviews.initial_load", "starting with empty collection", err)
	}
}

// RegisterHandlers subscribes to taxonomy reloads so derived views over the
// working set are re-announced when classification rules change.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.TaxonomyReloaded{}.EventName(), events.HandlerFunc(
		func(ctx context.Context, _ events.Event) error {
			m.collection.SetAll(m.collection.Snapshot())
			return nil
		}))
}

// RegisterRoutes mounts interview routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/interviews")
	group.GET("", httpkit.RequireCapability(httpkit.CapViewInterviews), m.handler.List)
	group.GET("/counts", httpkit.RequireCapability(httpkit.CapViewInterviews), m.handler.Counts)
	group.GET("/:id", httpkit.RequireCapability(httpkit.CapViewInterviews), m.handler.Get)
	group.POST("", httpkit.RequireCapability(httpkit.CapManageInterviews), m.handler.Create)
	group.PATCH("/:id", httpkit.RequireCapability(httpkit.CapManageInterviews), m.handler.Update)
	group.PATCH("/:id/status", httpkit.RequireCapability(httpkit.CapManageInterviews), m.handler.UpdateStatus)
	group.POST("/check-duplicates", httpkit.RequireCapability(httpkit.CapViewInterviews), m.handler.CheckDuplicates)

	adminGroup := ctx.Admin.Group("/interviews")
	adminGroup.POST("/reload", httpkit.RequireCapability(httpkit.CapManageInterviews), m.handler.Reload)
}

var _ apphttp.Module = (*Module)(nil)
