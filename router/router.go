package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mailguard-live/mailguard-backend/config"
	"github.com/mailguard-live/mailguard-backend/contract"
	"github.com/mailguard-live/mailguard-backend/handlers"
	"github.com/mailguard-live/mailguard-backend/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	MessageHandler *handlers.MessageHandler
	HealthHandler  *handlers.HealthHandler
	Logger         *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.ReadinessCheck)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The message route comes from the shared contract so the server and the
	// client SDK register the same method and path.
	r.Handle(contract.CreateMessage.Method, contract.CreateMessage.Path, deps.MessageHandler.CreateMessage)

	return r
}
