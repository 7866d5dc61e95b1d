package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

const leaveDateLayout = "2006-01-02"

var (
	// ErrLeaveNotFound indicates no leave request matches the given ID
	ErrLeaveNotFound = fmt.Errorf("leave request not found")

	// ErrLeaveAlreadyDecided indicates the request was already approved or rejected
	ErrLeaveAlreadyDecided = fmt.Errorf("leave request has already been decided")

	// ErrInvalidLeaveDates indicates the dates are missing, malformed or reversed
	ErrInvalidLeaveDates = fmt.Errorf("please enter a valid date range")

	// ErrMissingLeaveReason indicates the reason was left blank
	ErrMissingLeaveReason = fmt.Errorf("please enter a reason for leave")
)

// LeaveService handles staff leave requests and supervisor decisions
type LeaveService struct {
	leaveRepo *database.LeaveRequestRepository
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	now       func() time.Time
}

// NewLeaveService creates a new leave service
func NewLeaveService(leaveRepo *database.LeaveRequestRepository, m *metrics.Metrics, logger *logrus.Logger) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// ListRequests returns every leave request
func (s *LeaveService) ListRequests() ([]models.LeaveRequest, error) {
	requests, err := s.leaveRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ListForEmployee returns one employee's leave history
func (s *LeaveService) ListForEmployee(empID string) ([]models.LeaveRequest, error) {
	requests, err := s.leaveRepo.ListByEmpID(empID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// PendingCount counts requests awaiting a decision
func (s *LeaveService) PendingCount() (int, error) {
	requests, err := s.ListRequests()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, request := range requests {
		if request.Status == models.LeaveStatusPending {
			count++
		}
	}
	return count, nil
}

// RequestLeave files a pending leave request
func (s *LeaveService) RequestLeave(input models.LeaveInput) (*models.LeaveRequest, error) {
	from, err := time.Parse(leaveDateLayout, input.FromDate)
	if err != nil {
		return nil, ErrInvalidLeaveDates
	}
	to, err := time.Parse(leaveDateLayout, input.ToDate)
	if err != nil || to.Before(from) {
		return nil, ErrInvalidLeaveDates
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrMissingLeaveReason
	}

	request := &models.LeaveRequest{
		StaffName: input.StaffName,
		EmpID:     input.EmpID,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
		Reason:    strings.TrimSpace(input.Reason),
		Status:    models.LeaveStatusPending,
	}
	if err := s.leaveRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}

	s.metrics.LeaveStatus(string(request.Status))
	s.logger.WithFields(logrus.Fields{
		"leave_id": request.ID,
		"emp_id":   request.EmpID,
		"from":     request.FromDate,
		"to":       request.ToDate,
	}).Info("Leave requested")

	return request, nil
}

// Approve approves a pending leave request
func (s *LeaveService) Approve(id int) (*models.LeaveRequest, error) {
	return s.decide(id, models.LeaveStatusApproved)
}

// Reject rejects a pending leave request
func (s *LeaveService) Reject(id int) (*models.LeaveRequest, error) {
	return s.decide(id, models.LeaveStatusRejected)
}

func (s *LeaveService) decide(id int, status models.LeaveStatus) (*models.LeaveRequest, error) {
	request, err := s.leaveRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request.Status != models.LeaveStatusPending {
		return nil, ErrLeaveAlreadyDecided
	}

	request, err = s.leaveRepo.UpdateStatus(id, status, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.metrics.LeaveStatus(string(status))
	s.logger.WithFields(logrus.Fields{
		"leave_id": id,
		"emp_id":   request.EmpID,
		"status":   status,
	}).Info("Leave request decided")

	return request, nil
}
