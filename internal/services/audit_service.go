package services

import (
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/utils"
)

// AuditEvent represents an operator action worth keeping in the audit log
type AuditEvent struct {
	UserID     string                 // session user, empty for guests
	Action     string                 // e.g. "login", "permission_verify", "leave_approve"
	EntityType string                 // e.g. "material_request", "leave_request"
	EntityID   int                    // 0 when no entity is involved
	IPAddress  string                 // Client IP address
	UserAgent  string                 // Client user agent
	Details    map[string]interface{} // Additional details
}

// AuditService writes audit events as structured log entries tagged audit=true
type AuditService struct {
	logger *logrus.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(logger *logrus.Logger) *AuditService {
	return &AuditService{
		logger: logger,
	}
}

// Log records one audit event
func (s *AuditService) Log(event AuditEvent) {
	fields := logrus.Fields{
		"audit":       true,
		"action":      event.Action,
		"entity_type": event.EntityType,
		"ip_address":  event.IPAddress,
		"device_info": utils.ParseUserAgent(event.UserAgent),
	}
	if event.UserID != "" {
		fields["user_id"] = event.UserID
	}
	if event.EntityID != 0 {
		fields["entity_id"] = event.EntityID
	}
	for k, v := range event.Details {
		fields[k] = v
	}

	s.logger.WithFields(fields).Info("Audit event")
}

// LogLogin logs a dashboard login
func (s *AuditService) LogLogin(userID, role, ipAddress, userAgent string) {
	s.Log(AuditEvent{
		UserID:     userID,
		Action:     "login",
		EntityType: "session",
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Details:    map[string]interface{}{"role": role},
	})
}

// LogLogout logs a logout
func (s *AuditService) LogLogout(userID, ipAddress, userAgent string) {
	s.Log(AuditEvent{
		UserID:     userID,
		Action:     "logout",
		EntityType: "session",
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// LogPermissionVerification logs a store hand-over attempt
func (s *AuditService) LogPermissionVerification(userID, permissionID string, requestID int, success bool, ipAddress, userAgent string) {
	action := "permission_verify_failed"
	if success {
		action = "permission_verify_success"
	}
	s.Log(AuditEvent{
		UserID:     userID,
		Action:     action,
		EntityType: "material_request",
		EntityID:   requestID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Details:    map[string]interface{}{"permission_id": permissionID},
	})
}

// LogLeaveDecision logs a supervisor approving or rejecting leave
func (s *AuditService) LogLeaveDecision(userID string, leaveID int, status string, ipAddress, userAgent string) {
	s.Log(AuditEvent{
		UserID:     userID,
		Action:     "leave_" + status,
		EntityType: "leave_request",
		EntityID:   leaveID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// LogRateLimitViolation logs a guest hitting the complaint limit
func (s *AuditService) LogRateLimitViolation(ipAddress, userAgent string, err *RateLimitError) {
	s.Log(AuditEvent{
		Action:     "rate_limit_violation",
		EntityType: "complaint",
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Details:    map[string]interface{}{"retry_after": err.RetryAfter},
	})
}
