package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/models"
	"github.com/Adarshkumar111/Maintenance/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var adminTabs = []tab{
	{ID: "overview", Label: "Overview"},
	{ID: "qr", Label: "QR Management"},
	{ID: "departments", Label: "Departments"},
	{ID: "staff", Label: "Staff"},
	{ID: "complaints", Label: "Complaints"},
}

// DepartmentRequest represents the add department form
type DepartmentRequest struct {
	Name string `form:"name" binding:"required"`
}

// StaffRequest represents the add staff form
type StaffRequest struct {
	Name       string `form:"name" binding:"required"`
	EmpID      string `form:"emp_id" binding:"required"`
	Department string `form:"department" binding:"required"`
	Role       string `form:"role" binding:"required"`
	JoinDate   string `form:"join_date"`
}

// AdminHandler handles the admin dashboard and its actions
type AdminHandler struct {
	dashboardService *services.DashboardService
	complaintService *services.ComplaintService
	staffService     *services.StaffService
	qrService        *services.QRService
	exportService    *services.ExportService
	logger           *logrus.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	dashboardService *services.DashboardService,
	complaintService *services.ComplaintService,
	staffService *services.StaffService,
	qrService *services.QRService,
	exportService *services.ExportService,
	logger *logrus.Logger,
) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		complaintService: complaintService,
		staffService:     staffService,
		qrService:        qrService,
		exportService:    exportService,
		logger:           logger,
	}
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, activeTab(c, adminTabs), gin.H{})
}

// RoomQRCode handles GET /admin/qr/rooms/:id/qr.png
func (h *AdminHandler) RoomQRCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		renderError(c, h.logger, http.StatusNotFound, services.ErrRoomNotFound)
		return
	}
	png, err := h.qrService.RoomQR(id)
	if err != nil {
		renderError(c, h.logger, statusFor(err), err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// AreaQRCode handles GET /admin/qr/areas/:id/qr.png
func (h *AdminHandler) AreaQRCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		renderError(c, h.logger, http.StatusNotFound, services.ErrAreaNotFound)
		return
	}
	png, err := h.qrService.AreaQR(id)
	if err != nil {
		renderError(c, h.logger, statusFor(err), err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GenerateRoomQR handles POST /admin/qr/rooms/:id/generate
func (h *AdminHandler) GenerateRoomQR(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrRoomNotFound)
		h.render(c, status, "qr", data)
		return
	}
	room, err := h.qrService.GenerateRoomQR(id)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "qr", data)
		return
	}
	h.render(c, http.StatusOK, "qr", gin.H{"Notice": fmt.Sprintf("QR code generated for Room %s", room.RoomNo)})
}

// GenerateAreaQR handles POST /admin/qr/areas/:id/generate
func (h *AdminHandler) GenerateAreaQR(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrAreaNotFound)
		h.render(c, status, "qr", data)
		return
	}
	area, err := h.qrService.GenerateAreaQR(id)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "qr", data)
		return
	}
	h.render(c, http.StatusOK, "qr", gin.H{"Notice": fmt.Sprintf("QR code generated for %s", area.Name)})
}

// AddDepartment handles POST /admin/departments
func (h *AdminHandler) AddDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "departments", gin.H{
			"Alert":          alertMessage(services.ErrMissingDepartmentName),
			"DepartmentForm": req,
		})
		return
	}

	department, err := h.staffService.AddDepartment(req.Name)
	if err != nil {
		status, data := failure(c, h.logger, err)
		data["DepartmentForm"] = req
		h.render(c, status, "departments", data)
		return
	}
	h.render(c, http.StatusOK, "departments", gin.H{"Notice": fmt.Sprintf("Department %s added", department.Name)})
}

// AddStaff handles POST /admin/staff
func (h *AdminHandler) AddStaff(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "staff", gin.H{
			"Alert":     alertMessage(services.ErrMissingStaffFields),
			"StaffForm": req,
		})
		return
	}

	staff, err := h.staffService.AddStaff(models.StaffInput{
		Name:       req.Name,
		EmpID:      req.EmpID,
		Department: req.Department,
		Role:       req.Role,
		JoinDate:   req.JoinDate,
	})
	if err != nil {
		status, data := failure(c, h.logger, err)
		data["StaffForm"] = req
		h.render(c, status, "staff", data)
		return
	}
	h.render(c, http.StatusOK, "staff", gin.H{"Notice": fmt.Sprintf("%s (%s) added to %s", staff.Name, staff.EmpID, staff.Department)})
}

// ExportComplaints handles GET /admin/complaints/export.xlsx
func (h *AdminHandler) ExportComplaints(c *gin.Context) {
	complaints, err := h.complaintService.ListComplaints()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	data, err := h.exportService.ComplaintsXLSX(complaints)
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="complaints.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *AdminHandler) render(c *gin.Context, status int, tabID string, data gin.H) {
	rooms, err := h.qrService.ListRooms()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	areas, err := h.qrService.ListAreas()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	departments, err := h.staffService.ListDepartments()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	staff, err := h.staffService.ListStaff()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	complaints, err := h.complaintService.ListComplaints()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}

	data["Tab"] = tabID
	data["Tabs"] = adminTabs
	data["BasePath"] = models.RoleAdmin.Path()
	data["Overview"] = h.dashboardService.AdminOverview()
	data["Rooms"] = rooms
	data["Areas"] = areas
	data["Departments"] = departments
	data["Staff"] = staff
	data["Complaints"] = complaints
	data["StaffRoles"] = []models.StaffRole{models.StaffRoleStaff, models.StaffRoleSupervisor}
	if _, ok := data["DepartmentForm"]; !ok {
		data["DepartmentForm"] = DepartmentRequest{}
	}
	if _, ok := data["StaffForm"]; !ok {
		data["StaffForm"] = StaffRequest{Role: string(models.StaffRoleStaff)}
	}
	render(c, status, "admin.html", "Admin Dashboard", data)
}
