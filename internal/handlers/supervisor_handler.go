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

const topPerformerCount = 3

var supervisorTabs = []tab{
	{ID: "complaints", Label: "Complaints"},
	{ID: "staff", Label: "Staff"},
	{ID: "leave", Label: "Leave Requests"},
	{ID: "materials", Label: "Materials"},
	{ID: "analytics", Label: "Analytics"},
	{ID: "profile", Label: "Profile"},
}

// AssignRequest represents the assign complaint form
type AssignRequest struct {
	StaffName string `form:"staff_name" binding:"required"`
	Urgency   string `form:"urgency" binding:"required"`
}

// AttendanceRequest represents the mark attendance form.
// Present holds the IDs of the ticked staff members.
type AttendanceRequest struct {
	Date    string `form:"date" binding:"required"`
	Present []int  `form:"present"`
}

// SupervisorHandler handles the supervisor dashboard
type SupervisorHandler struct {
	dashboardService *services.DashboardService
	complaintService *services.ComplaintService
	staffService     *services.StaffService
	leaveService     *services.LeaveService
	materialService  *services.MaterialService
	auditService     *services.AuditService
	logger           *logrus.Logger
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(
	dashboardService *services.DashboardService,
	complaintService *services.ComplaintService,
	staffService *services.StaffService,
	leaveService *services.LeaveService,
	materialService *services.MaterialService,
	auditService *services.AuditService,
	logger *logrus.Logger,
) *SupervisorHandler {
	return &SupervisorHandler{
		dashboardService: dashboardService,
		complaintService: complaintService,
		staffService:     staffService,
		leaveService:     leaveService,
		materialService:  materialService,
		auditService:     auditService,
		logger:           logger,
	}
}

// Dashboard handles GET /supervisor
func (h *SupervisorHandler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, activeTab(c, supervisorTabs), gin.H{})
}

// AssignComplaint handles POST /supervisor/complaints/:id/assign
func (h *SupervisorHandler) AssignComplaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrComplaintNotFound)
		h.render(c, status, "complaints", data)
		return
	}

	var req AssignRequest
	if err := c.ShouldBind(&req); err != nil {
		missing := services.ErrInvalidUrgency
		if req.StaffName == "" {
			missing = services.ErrStaffNotFound
		}
		h.render(c, http.StatusBadRequest, "complaints", gin.H{"Alert": alertMessage(missing)})
		return
	}

	complaint, err := h.complaintService.AssignComplaint(id, req.StaffName, req.Urgency)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "complaints", data)
		return
	}
	h.render(c, http.StatusOK, "complaints", gin.H{
		"Notice": fmt.Sprintf("Complaint #%d assigned to %s", complaint.ID, complaint.AssignedTo),
	})
}

// MarkAttendance handles POST /supervisor/attendance
func (h *SupervisorHandler) MarkAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "staff", gin.H{"Alert": alertMessage(services.ErrInvalidAttendanceDate)})
		return
	}

	marks, err := h.staffService.MarkAttendance(req.Date, req.Present)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "staff", data)
		return
	}

	present := 0
	for _, mark := range marks {
		if mark.Present {
			present++
		}
	}
	h.render(c, http.StatusOK, "staff", gin.H{
		"Notice": fmt.Sprintf("Attendance saved for %s: %d of %d present", req.Date, present, len(marks)),
	})
}

// ApproveLeave handles POST /supervisor/leave/:id/approve
func (h *SupervisorHandler) ApproveLeave(c *gin.Context) {
	h.decideLeave(c, h.leaveService.Approve)
}

// RejectLeave handles POST /supervisor/leave/:id/reject
func (h *SupervisorHandler) RejectLeave(c *gin.Context) {
	h.decideLeave(c, h.leaveService.Reject)
}

func (h *SupervisorHandler) decideLeave(c *gin.Context, decide func(id int) (*models.LeaveRequest, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		status, data := failure(c, h.logger, services.ErrLeaveNotFound)
		h.render(c, status, "leave", data)
		return
	}

	request, err := decide(id)
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.render(c, status, "leave", data)
		return
	}

	h.auditService.LogLeaveDecision(sessionUser(c), request.ID, string(request.Status), utils.GetRealIP(c), c.Request.UserAgent())
	h.render(c, http.StatusOK, "leave", gin.H{
		"Notice": fmt.Sprintf("Leave request from %s %s", request.StaffName, request.Status),
	})
}

func (h *SupervisorHandler) render(c *gin.Context, status int, tabID string, data gin.H) {
	complaints, err := h.complaintService.ListComplaints()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	counts, err := h.complaintService.Counts()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	staff, err := h.staffService.ListStaff()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	performance, err := h.staffService.Performance()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	topPerformers, err := h.staffService.TopPerformers(topPerformerCount)
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	week, err := h.staffService.AttendanceWeek()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	today := h.staffService.Today()
	attendance, err := h.staffService.Attendance(today)
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	leaveRequests, err := h.leaveService.ListRequests()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	pendingLeave, err := h.leaveService.PendingCount()
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}
	materials, err := h.materialService.Search("")
	if err != nil {
		renderError(c, h.logger, http.StatusInternalServerError, err)
		return
	}

	data["Tab"] = tabID
	data["Tabs"] = supervisorTabs
	data["BasePath"] = models.RoleSupervisor.Path()
	data["Profile"] = h.dashboardService.SupervisorProfile()
	data["Complaints"] = complaints
	data["Counts"] = counts
	data["Staff"] = staff
	data["Urgencies"] = models.Urgencies
	data["Performance"] = performance
	data["TopPerformers"] = topPerformers
	data["AttendanceWeek"] = week
	data["Today"] = today
	data["Attendance"] = attendance
	data["LeaveRequests"] = leaveRequests
	data["PendingLeave"] = pendingLeave
	data["Materials"] = materials
	data["Analytics"] = h.dashboardService.SupervisorAnalytics()
	render(c, status, "supervisor.html", "Supervisor Dashboard", data)
}
