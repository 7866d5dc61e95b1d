package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/models"
	"github.com/Adarshkumar111/Maintenance/internal/services"
)

var staffTabs = []tab{
	{ID: "assignments", Label: "My Assignments"},
	{ID: "leave", Label: "Leave"},
	{ID: "profile", Label: "Profile"},
}

// CompleteWorkRequest represents the complete work form. The photo is a separate file field.
type CompleteWorkRequest struct {
	OTP string `form:"otp" binding:"required,otp"`
}

// LeaveForm represents the staff leave request form
type LeaveForm struct {
	FromDate string `form:"from_date" binding:"required"`
	ToDate   string `form:"to_date" binding:"required"`
	Reason   string `form:"reason" binding:"required"`
}

// MaterialForm represents the request material form on an assignment
type MaterialForm struct {
	ItemName    string `form:"item_name" binding:"required"`
	Quantity    int    `form:"quantity" binding:"required,min=1"`
	Description string `form:"description"`
}

// StaffHandler handles the staff dashboard
type StaffHandler struct {
	dashboardService *services.DashboardService
	complaintService *services.ComplaintService
	leaveService     *services.LeaveService
	materialService  *services.MaterialService
	logger           *logrus.Logger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(
	dashboardService *services.DashboardService,
	complaintService *services.ComplaintService,
	leaveService *services.LeaveService,
	materialService *services.MaterialService,
	logger *logrus.Logger,
) *StaffHandler {
	return &StaffHandler{
		dashboardService: dashboardService,
		complaintService: complaintService,
		leaveService:     leaveService,
		materialService:  materialService,
		logger:           logger,
	}
}

// Dashboard handles GET /staff
func (h *StaffHandler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, activeTab(c, staffTabs), gin.H{})
}

// CompleteAssignment handles POST /staff/assignments/:id/complete
func (h *StaffHandler) CompleteAssignment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrAssignmentNotFound)
		h.render(c, status, "assignments", data)
		return
	}

	var req CompleteWorkRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "assignments", gin.H{"Alert": alertMessage(services.ErrInvalidOTP)})
		return
	}

	assignment, err := h.complaintService.CompleteAssignment(id, req.OTP, hasUpload(c, "photo"))
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "assignments", data)
		return
	}
	h.render(c, http.StatusOK, "assignments", gin.H{
		"Notice": fmt.Sprintf("Work for Room %s marked as completed", assignment.RoomNo),
	})
}

// RequestMaterial handles POST /staff/assignments/:id/materials
func (h *StaffHandler) RequestMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrAssignmentNotFound)
		h.render(c, status, "assignments", data)
		return
	}

	var req MaterialForm
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "assignments", gin.H{"Alert": alertMessage(services.ErrInvalidMaterialRequest)})
		return
	}

	assignment, err := h.complaintService.GetAssignment(id)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "assignments", data)
		return
	}

	profile := h.dashboardService.StaffProfile()
	request, err := h.materialService.RequestMaterial(models.MaterialInput{
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		RoomNo:      assignment.RoomNo,
		RequestedBy: profile.Name,
		Department:  profile.Department,
		Description: req.Description,
	})
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "assignments", data)
		return
	}
	h.render(c, http.StatusOK, "assignments", gin.H{
		"Notice": fmt.Sprintf("Requested %d x %s from the store", request.Quantity, request.ItemName),
	})
}

// RequestLeave handles POST /staff/leave
func (h *StaffHandler) RequestLeave(c *gin.Context) {
	var req LeaveForm
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "leave", gin.H{
			"Alert":     alertMessage(services.ErrInvalidLeaveDates),
			"LeaveForm": req,
		})
		return
	}

	profile := h.dashboardService.StaffProfile()
	if _, err := h.leaveService.RequestLeave(models.LeaveInput{
		StaffName: profile.Name,
		EmpID:     profile.EmpID,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Reason:    req.Reason,
	}); err != nil {
		status, data := failure(c, h.logger, err)
		data["LeaveForm"] = req
		h.render(c, status, "leave", data)
		return
	}
	h.render(c, http.StatusOK, "leave", gin.H{"Notice": "Leave request submitted"})
}

func (h *StaffHandler) render(c *gin.Context, status int, tabID string, data gin.H) {
	profile := h.dashboardService.StaffProfile()

	assignments, err := h.complaintService.ListAssignments()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	highPriority, err := h.complaintService.HighPriorityCount()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	leaveRequests, err := h.leaveService.ListForEmployee(profile.EmpID)
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}

	data["Tab"] = tabID
	data["Tabs"] = staffTabs
	data["BasePath"] = models.RoleStaff.Path()
	data["Profile"] = profile
	data["Assignments"] = assignments
	data["HighPriority"] = highPriority
	data["LeaveRequests"] = leaveRequests
	if _, ok := data["LeaveForm"]; !ok {
		data["LeaveForm"] = LeaveForm{}
	}
	render(c, status, "staff.html", "Staff Dashboard", data)
}
