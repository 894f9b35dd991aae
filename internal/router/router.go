package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/config"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/handler"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	caseH *handler.CaseHandler,
	analysisH *handler.AnalysisHandler,
	chatH *handler.ChatHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Case intake
	cases := v1.Group("/cases")
	cases.POST("", caseH.Create)
	cases.GET("", caseH.List)
	cases.GET("/:id", caseH.GetByID)
	cases.PUT("/:id", caseH.Rename)
	cases.PUT("/:id/details", caseH.UpdateDetails)
	cases.DELETE("/:id", caseH.Delete)
	cases.POST("/:id/snapshots", caseH.SaveSnapshot)
	cases.GET("/:id/snapshots", caseH.ListSnapshots)
	cases.GET("/:id/snapshots/latest", caseH.LatestSnapshot)

	// AI analysis flows
	analysis := v1.Group("/analysis")
	analysis.POST("/case", analysisH.GenerateCaseAnalysis)
	analysis.POST("/key-points", analysisH.GenerateKeyPoints)
	analysis.POST("/strategy", analysisH.GenerateStrategy)
	analysis.POST("/roadmap", analysisH.GenerateRoadmap)
	analysis.POST("/roadmap/export", analysisH.ExportRoadmap)
	analysis.POST("/outline", analysisH.GenerateOutline)

	// AI chat flows
	chat := v1.Group("/chat")
	chat.POST("/message", chatH.Message)
	chat.POST("/devils-advocate", chatH.Challenge)

	return r
}
