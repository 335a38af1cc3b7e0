package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/projectstage/config-backend/config"
	httpapi "github.com/projectstage/config-backend/internal/api/http"
	"github.com/projectstage/config-backend/internal/api/http/middleware"
	"github.com/projectstage/config-backend/internal/audit"
	projecthttp "github.com/projectstage/config-backend/internal/projects/http"
	"github.com/projectstage/config-backend/internal/projects/repository"
	"github.com/projectstage/config-backend/internal/projects/service"
	"github.com/projectstage/config-backend/internal/projects/staging"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Store       *redis.Client
	DB          *pgxpool.Pool
}

// BuildRouter assembles the gin engine and, as a side product, the
// ingestion pipeline so the cron sweep can share it with the upload route.
func BuildRouter(dep RouterDeps) (*gin.Engine, *service.Pipeline) {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Store, dep.DB)
	healthHandler.RegisterRoutes(r)

	stagingStore := staging.NewStore(dep.Cfg.Staging.Dir)
	projectRepo := repository.NewRepo(dep.Store)
	auditRepo := audit.NewRepo(dep.DB)
	pipeline := service.NewPipeline(stagingStore, projectRepo, auditRepo)
	statuses := service.NewStateMachine(dep.Cfg.App.StrictTransitions)

	api := r.Group("/api/v1")

	h := projecthttp.New(stagingStore, projectRepo, pipeline, statuses)
	h.Register(api, dep.Cfg.RateLimit.Requests, dep.Cfg.RateLimit.Window)

	return r, pipeline
}
