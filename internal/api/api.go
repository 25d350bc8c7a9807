package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/internal/database"
	"github.com/oncoplate/backend/internal/middleware"
	"github.com/oncoplate/backend/internal/service"
)

// SetupRouter wires the middleware stack and every handler group.
// healthDB may be nil in tests; the health endpoint then only reports
// that the process is up.
func SetupRouter(db *gorm.DB, healthDB *database.DB, authService *service.AuthService, planService *service.PlanService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(healthDB))

	v1 := router.Group("/api/v1")

	authHandler := NewAuthHandler(authService)
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	NewProfileHandler(db).RegisterRoutes(protected)
	NewLogHandler(db).RegisterRoutes(protected)
	NewPlanHandler(planService).RegisterRoutes(protected)

	return router
}

func healthHandler(healthDB *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if healthDB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := healthDB.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
			status["database"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	}
}
