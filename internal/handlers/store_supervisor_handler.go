package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/models"
	"github.com/Adarshkumar111/Maintenance/internal/services"
	"github.com/Adarshkumar111/Maintenance/internal/utils"
)

var storeTabs = []tab{
	{ID: "requests", Label: "Material Requests"},
	{ID: "profile", Label: "Profile"},
}

// VerifyPermissionRequest represents the hand-over form
type VerifyPermissionRequest struct {
	PermissionID string `form:"permission_id" binding:"required,permission_id"`
}

// StoreSupervisorHandler handles the store supervisor dashboard
type StoreSupervisorHandler struct {
	dashboardService *services.DashboardService
	materialService  *services.MaterialService
	auditService     *services.AuditService
	logger           *logrus.Logger
}

// NewStoreSupervisorHandler creates a new store supervisor handler
func NewStoreSupervisorHandler(
	dashboardService *services.DashboardService,
	materialService *services.MaterialService,
	auditService *services.AuditService,
	logger *logrus.Logger,
) *StoreSupervisorHandler {
	return &StoreSupervisorHandler{
		dashboardService: dashboardService,
		materialService:  materialService,
		auditService:     auditService,
		logger:           logger,
	}
}

// Dashboard handles GET /store-supervisor?q=
func (h *StoreSupervisorHandler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, activeTab(c, storeTabs), gin.H{"Query": c.Query("q")})
}

// MarkAvailable handles POST /store-supervisor/requests/:id/available
func (h *StoreSupervisorHandler) MarkAvailable(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrMaterialNotFound)
		h.render(c, status, "requests", data)
		return
	}

	request, err := h.materialService.MarkAvailable(id)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "requests", data)
		return
	}
	h.render(c, http.StatusOK, "requests", gin.H{
		"Notice": fmt.Sprintf("%s is available. Permission ID: %s", request.ItemName, request.PermissionID),
	})
}

// VerifyPermission handles POST /store-supervisor/permissions/verify
func (h *StoreSupervisorHandler) VerifyPermission(c *gin.Context) {
	var req VerifyPermissionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.auditService.LogPermissionVerification(sessionUser(c), req.PermissionID, 0, false, utils.GetRealIP(c), c.Request.UserAgent())
		h.render(c, http.StatusBadRequest, "requests", gin.H{
			"Alert":      alertMessage(services.ErrInvalidPermissionID),
			"VerifyForm": req,
		})
		return
	}

	request, err := h.materialService.VerifyPermission(req.PermissionID)
	if err != nil {
		h.auditService.LogPermissionVerification(sessionUser(c), req.PermissionID, 0, false, utils.GetRealIP(c), c.Request.UserAgent())
		status, data := failure(c, h.logger, err)
		data["VerifyForm"] = req
		h.render(c, status, "requests", data)
		return
	}

	h.auditService.LogPermissionVerification(sessionUser(c), req.PermissionID, request.ID, true, utils.GetRealIP(c), c.Request.UserAgent())
	h.render(c, http.StatusOK, "requests", gin.H{"Notice": "Material collected successfully!"})
}

func (h *StoreSupervisorHandler) render(c *gin.Context, status int, tabID string, data gin.H) {
	query, _ := data["Query"].(string)
	materials, err := h.materialService.Search(query)
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	stats, err := h.materialService.Stats()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}

	data["Tab"] = tabID
	data["Tabs"] = storeTabs
	data["BasePath"] = models.RoleStoreSupervisor.Path()
	data["Profile"] = h.dashboardService.StoreProfile()
	data["Query"] = query
	data["Materials"] = materials
	data["Stats"] = stats
	if _, ok := data["VerifyForm"]; !ok {
		data["VerifyForm"] = VerifyPermissionRequest{}
	}
	render(c, status, "store_supervisor.html", "Store Supervisor Dashboard", data)
}
