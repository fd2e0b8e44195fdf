// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Rdrudra99/tripplanner/internal/http/handlers"
	"github.com/Rdrudra99/tripplanner/internal/http/middleware"
	"github.com/Rdrudra99/tripplanner/internal/modules/intake"
	"github.com/Rdrudra99/tripplanner/internal/modules/planner"
)

func NewRouter(
	intakeService *intake.Service,
	plannerService *planner.Service,
	corsOrigins []string,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Client-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	plannerHandler := handlers.NewPlannerHandler(plannerService)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	resultsHandler := handlers.NewResultsHandler(intakeService, plannerService)

	api := r.Group("/api")
	{
		api.POST("/trip-planner", plannerHandler.Plan)
		api.POST("/trip-form", intakeHandler.Submit)
		api.GET("/trip-results", resultsHandler.Results)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
