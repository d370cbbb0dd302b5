package v1

import (
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/metrics"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
	Config    *config.Config
	Log       *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(ginzap.Ginzap(deps.Log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(deps.Log, true))
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Log))

	public := r.Group("")

	NewHealthHandler(public, deps.HealthUC)
	NewContactHandler(public, deps.ContactUC)

	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
