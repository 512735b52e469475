package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the route tree. Everything under
// /api/public is reachable without the dashboard; the signing page uses it.
func SetupRouter(
	bc *controllers.BookingController,
	uc *controllers.UnitController,
	bdc *controllers.BlockedDateController,
	cc *controllers.CalendarController,
	sc *controllers.SettingsController,
	ac *controllers.AgreementController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetAll)
			bookings.POST("", bc.Create)
			bookings.GET("/:id", bc.GetByID)
			bookings.PUT("/:id", bc.Update)
			bookings.DELETE("/:id", bc.Delete)
			bookings.POST("/:id/cancel", bc.Cancel)
			bookings.GET("/:id/signature-link", bc.SignatureLink)
			bookings.GET("/:id/agreement", bc.Agreement)
		}

		units := api.Group("/units")
		{
			units.GET("", uc.GetAll)
			units.POST("", uc.Create)
			units.PUT("/:id", uc.Rename)
			units.DELETE("/:id", uc.Delete)
		}

		blockedDates := api.Group("/blocked-dates")
		{
			blockedDates.GET("", bdc.GetAll)
			blockedDates.POST("", bdc.Create)
			blockedDates.PUT("/:id", bdc.Update)
			blockedDates.DELETE("/:id", bdc.Delete)
		}

		api.GET("/calendar", cc.GetMonth)

		settings := api.Group("/settings")
		{
			settings.GET("/app-url", sc.GetAppURL)
			settings.PUT("/app-url", sc.UpdateAppURL)
		}

		agreements := api.Group("/agreements")
		{
			agreements.POST("", ac.Save)
			agreements.GET("/download", ac.Download)
		}

		public := api.Group("/public")
		{
			public.GET("/bookings/:id/sign", bc.GetForSigning)
			public.POST("/bookings/:id/sign", bc.Sign)
		}
	}

	return r
}
