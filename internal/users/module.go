// Package users provides the user directory module: display-name resolution
// with a Redis cache, and the recruiter list used by assignment pickers.
package users

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	apphttp "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/users/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/users/service"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// UserResponse is the wire form of one portal user.
type UserResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// Module is the users module implementing http.Module.
type Module struct {
	directory *service.Directory
}

// NewModule wires the user directory. cache may be nil; the directory then
// hits the store on every lookup.
func NewModule(pool *pgxpool.Pool, cache *redis.Client, cfg config.RedisConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	directory := service.NewDirectory(repo, cache, cfg.GetDirectoryCacheTTL(), log)
	return &Module{directory: directory}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// Directory returns the display-name resolver for other modules.
func (m *Module) Directory() *service.Directory {
	return m.directory
}

// RegisterRoutes mounts user routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/users", m.list)
}

func (m *Module) list(c *gin.Context) {
	users, err := m.directory.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, UserResponse{ID: user.ID, Name: user.Name, Role: user.Role})
	}
	httpkit.OK(c, gin.H{"items": items, "total": len(items)})
}

var _ apphttp.Module = (*Module)(nil)
