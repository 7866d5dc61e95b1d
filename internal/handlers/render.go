package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/middleware"
	"github.com/Adarshkumar111/Maintenance/internal/services"
)

// tab is one entry of a dashboard tab bar
type tab struct {
	ID    string
	Label string
}

// render adds the layout fields every template expects and writes the page
func render(c *gin.Context, status int, name, title string, data gin.H) {
	data["Title"] = title
	data["RequestID"] = middleware.GetRequestID(c)
	if session, ok := middleware.GetSessionContext(c); ok {
		data["Session"] = session
	}
	c.HTML(status, name, data)
}

// renderError shows the generic error page and logs unexpected failures
func renderError(c *gin.Context, logger *logrus.Logger, status int, err error) {
	heading := http.StatusText(status)
	message := alertMessage(err)
	if status >= http.StatusInternalServerError {
		logger.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Request failed")
	}
	render(c, status, "error.html", heading, gin.H{
		"Heading": heading,
		"Message": message,
	})
}

// activeTab returns the tab named in ?tab= or the first tab when it is unknown
func activeTab(c *gin.Context, tabs []tab) string {
	requested := c.Query("tab")
	for _, t := range tabs {
		if t.ID == requested {
			return t.ID
		}
	}
	return tabs[0].ID
}

// pathID parses an integer route parameter
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// sessionUser is the signed-in user ID, or "" for anonymous visitors
func sessionUser(c *gin.Context) string {
	if session, ok := middleware.GetSessionContext(c); ok {
		return session.UserID
	}
	return ""
}

// statusFor maps service errors to the HTTP status of the re-rendered page
func statusFor(err error) int {
	var rateErr *services.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests

	case errors.Is(err, services.ErrComplaintNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrMaterialNotFound),
		errors.Is(err, services.ErrLeaveNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrAreaNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrAssignmentCompleted),
		errors.Is(err, services.ErrMaterialNotAvailable),
		errors.Is(err, services.ErrLeaveAlreadyDecided),
		errors.Is(err, services.ErrDuplicateEmpID),
		errors.Is(err, services.ErrDuplicateDepartment):
		return http.StatusConflict

	case errors.Is(err, services.ErrUnknownRole),
		errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrMissingComplaintFields),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidUrgency),
		errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrPhotoRequired),
		errors.Is(err, services.ErrInvalidPermissionID),
		errors.Is(err, services.ErrInvalidMaterialRequest),
		errors.Is(err, services.ErrInvalidLeaveDates),
		errors.Is(err, services.ErrMissingLeaveReason),
		errors.Is(err, services.ErrMissingStaffFields),
		errors.Is(err, services.ErrInvalidStaffRole),
		errors.Is(err, services.ErrDepartmentNotFound),
		errors.Is(err, services.ErrMissingDepartmentName),
		errors.Is(err, services.ErrInvalidAttendanceDate):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// alertMessage is the banner text for err. Internal errors are not shown.
func alertMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Something went wrong. Please try again."
	}
	r := []rune(err.Error())
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// failure renders a dashboard with an alert, logging the error when it is unexpected
func failure(c *gin.Context, logger *logrus.Logger, err error) (int, gin.H) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Action failed")
	}
	return status, gin.H{"Alert": alertMessage(err)}
}
