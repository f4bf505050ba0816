package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	httpapi "github.com/samridhagrawal-cpu/radius-backend/internal/api/http"
	"github.com/samridhagrawal-cpu/radius-backend/internal/api/http/middleware"
	vishttp "github.com/samridhagrawal-cpu/radius-backend/internal/visibility/http"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/service"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Orchestrator *service.Orchestrator
	Redis        *redis.Client
	DB           *sql.DB
	Log          *logrus.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID(dep.Log))

	vis := api.Group("/visibility")
	vishttp.NewHandler(dep.Orchestrator).Register(vis)

	return r
}
