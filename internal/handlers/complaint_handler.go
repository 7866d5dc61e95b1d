package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/models"
	"github.com/Adarshkumar111/Maintenance/internal/services"
	"github.com/Adarshkumar111/Maintenance/internal/utils"
)

// ComplaintRequest represents the guest complaint form
type ComplaintRequest struct {
	ITSNo       string `form:"its_no" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// ComplaintHandler handles the guest-facing complaint pages
type ComplaintHandler struct {
	complaintService *services.ComplaintService
	rateLimitService *services.RateLimitService
	auditService     *services.AuditService
	logger           *logrus.Logger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(
	complaintService *services.ComplaintService,
	rateLimitService *services.RateLimitService,
	auditService *services.AuditService,
	logger *logrus.Logger,
) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		rateLimitService: rateLimitService,
		auditService:     auditService,
		logger:           logger,
	}
}

// DefaultRoom handles GET /complaint/room
func (h *ComplaintHandler) DefaultRoom(c *gin.Context) {
	c.Redirect(http.StatusFound, "/complaint/room/"+url.PathEscape(services.DefaultRoomNo))
}

// DefaultArea handles GET /complaint/area
func (h *ComplaintHandler) DefaultArea(c *gin.Context) {
	c.Redirect(http.StatusFound, "/complaint/area/"+url.PathEscape(services.DefaultAreaName))
}

// ShowRoomForm handles GET /complaint/room/:roomId
func (h *ComplaintHandler) ShowRoomForm(c *gin.Context) {
	h.renderRoom(c, http.StatusOK, ComplaintRequest{}, gin.H{})
}

// SubmitRoomComplaint handles POST /complaint/room/:roomId
func (h *ComplaintHandler) SubmitRoomComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderRoom(c, http.StatusBadRequest, req, gin.H{"Alert": alertMessage(services.ErrMissingComplaintFields)})
		return
	}

	if err := h.checkRateLimit(c); err != nil {
		status, data := failure(c, h.logger, err)
		h.renderRoom(c, status, req, data)
		return
	}

	submitted, err := h.complaintService.SubmitRoomComplaint(models.ComplaintInput{
		ITSNo:       req.ITSNo,
		RoomNo:      c.Param("roomId"),
		Category:    req.Category,
		Description: req.Description,
		HasPhoto:    hasUpload(c, "photo"),
	})
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.renderRoom(c, status, req, data)
		return
	}

	h.rateLimitService.RecordComplaint(utils.GetRealIP(c))
	h.renderRoom(c, http.StatusOK, req, gin.H{"Submitted": submitted})
}

// ShowAreaForm handles GET /complaint/area/:areaId
func (h *ComplaintHandler) ShowAreaForm(c *gin.Context) {
	h.renderArea(c, http.StatusOK, ComplaintRequest{}, gin.H{})
}

// SubmitAreaComplaint handles POST /complaint/area/:areaId
func (h *ComplaintHandler) SubmitAreaComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderArea(c, http.StatusBadRequest, req, gin.H{"Alert": alertMessage(services.ErrMissingComplaintFields)})
		return
	}

	if err := h.checkRateLimit(c); err != nil {
		status, data := failure(c, h.logger, err)
		h.renderArea(c, status, req, data)
		return
	}

	submitted, err := h.complaintService.SubmitAreaComplaint(models.ComplaintInput{
		ITSNo:       req.ITSNo,
		AreaName:    c.Param("areaId"),
		Category:    req.Category,
		Description: req.Description,
		HasPhoto:    hasUpload(c, "photo"),
	})
	if err != nil {
		status, data := failure(c, h.logger, err)
		h.renderArea(c, status, req, data)
		return
	}

	h.rateLimitService.RecordComplaint(utils.GetRealIP(c))
	h.renderArea(c, http.StatusOK, req, gin.H{"Submitted": submitted})
}

// TrackComplaint handles GET /complaint/status?id=
func (h *ComplaintHandler) TrackComplaint(c *gin.Context) {
	id := c.Query("id")
	data := gin.H{"ID": id}
	if id == "" {
		render(c, http.StatusOK, "complaint_status.html", "Track Complaint", data)
		return
	}

	tracked, err := h.complaintService.TrackComplaint(id)
	if err != nil {
		status, alert := failure(c, h.logger, err)
		alert["ID"] = id
		render(c, status, "complaint_status.html", "Track Complaint", alert)
		return
	}

	data["Complaint"] = tracked
	render(c, http.StatusOK, "complaint_status.html", "Track Complaint", data)
}

// checkRateLimit stops one client from flooding the complaint list
func (h *ComplaintHandler) checkRateLimit(c *gin.Context) error {
	ip := utils.GetRealIP(c)
	err := h.rateLimitService.CheckComplaintRateLimit(ip)
	if err == nil {
		return nil
	}

	var rateErr *services.RateLimitError
	if errors.As(err, &rateErr) {
		h.auditService.LogRateLimitViolation(ip, c.Request.UserAgent(), rateErr)
	}
	return err
}

func (h *ComplaintHandler) renderRoom(c *gin.Context, status int, form ComplaintRequest, data gin.H) {
	roomNo := c.Param("roomId")
	if roomNo == "" {
		roomNo = services.DefaultRoomNo
	}
	data["RoomNo"] = roomNo
	data["Categories"] = models.RoomCategories
	data["Form"] = form
	render(c, status, "complaint_room.html", "Room Complaint", data)
}

func (h *ComplaintHandler) renderArea(c *gin.Context, status int, form ComplaintRequest, data gin.H) {
	areaName := c.Param("areaId")
	if areaName == "" {
		areaName = services.DefaultAreaName
	}
	data["AreaName"] = areaName
	data["Categories"] = models.AreaCategories
	data["Form"] = form
	render(c, status, "complaint_area.html", "Area Complaint", data)
}

// hasUpload reports whether the multipart form carried a file in field.
// The file itself is not stored.
func hasUpload(c *gin.Context, field string) bool {
	_, err := c.FormFile(field)
	return err == nil
}
