// Package router assembles the Gin engine, middleware chain, and module routes.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apphttp "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/httpkit"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// Options carries the router dependencies.
type Options struct {
	Env     string
	HTTP    config.HTTPConfig
	JWT     config.JWTConfig
	Logger  *logger.Logger
	Modules []apphttp.Module
}

// New builds the engine with the standard middleware chain and registers
// every module's routes.
func New(opts Options) *gin.Engine {
	if opts.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(opts.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(opts.HTTP))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(20), 40, opts.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(httpkit.AuthRequired(opts.JWT))
	admin := v1.Group("/admin")
	admin.Use(httpkit.AuthRequired(opts.JWT))

	ctx := &apphttp.RouterContext{
		Engine:    engine,
		V1:        v1,
		Protected: protected,
		Admin:     admin,
		Config:    opts.JWT,
	}
	for _, module := range opts.Modules {
		module.RegisterRoutes(ctx)
		opts.Logger.Info("routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(cfg config.HTTPConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.GetCORSOrigins()
	}
	return cors.New(corsConfig)
}
