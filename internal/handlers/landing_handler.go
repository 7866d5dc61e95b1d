package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adarshkumar111/Maintenance/internal/services"
)

// LandingHandler serves the public home page
type LandingHandler struct {
	dashboardService *services.DashboardService
}

// NewLandingHandler creates a new landing handler
func NewLandingHandler(dashboardService *services.DashboardService) *LandingHandler {
	return &LandingHandler{dashboardService: dashboardService}
}

// Home handles GET /
func (h *LandingHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "landing.html", "Home", gin.H{
		"ComplaintOptions": h.dashboardService.ComplaintOptions(),
		"Roles":            h.dashboardService.RoleOptions(),
		"Features":         h.dashboardService.Features(),
	})
}
