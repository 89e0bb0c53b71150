package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireAuth := AuthMiddleware(h.authService, h.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	facilities := api.Group("/facilities")
	{
		facilities.GET("", h.listFacilities)
		facilities.POST("", requireAuth, h.createFacility)
		// Статические пути регистрируются до /:id
		facilities.GET("/explore", h.exploreFacilities)
		facilities.GET("/nearest", h.nearestFacility)
		facilities.GET("/nearby", h.nearbyFacilities)
		facilities.GET("/geojson", h.facilitiesGeoJSON)
		facilities.GET("/:id", h.getFacility)
		facilities.POST("/:id/feedback", requireAuth, h.submitFeedback)
	}

	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
