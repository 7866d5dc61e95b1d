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
	"github.com/Adarshkumar111/Maintenance/internal/utils"
	"github.com/Adarshkumar111/Maintenance/pkg/validator"
)

const (
	// DefaultRoomNo is used when the room complaint form is opened without a room
	DefaultRoomNo = "101"

	// DefaultAreaName is used when the area complaint form is opened without an area
	DefaultAreaName = "Lobby"
)

var (
	// ErrComplaintNotFound indicates no complaint matches the given ID
	ErrComplaintNotFound = fmt.Errorf("Complaint ID not found!")

	// ErrMissingComplaintFields indicates a required form field was blank
	ErrMissingComplaintFields = fmt.Errorf("ITS number, category and description are required")

	// ErrInvalidCategory indicates the category is not offered on the form
	ErrInvalidCategory = fmt.Errorf("please select a valid category")

	// ErrInvalidUrgency indicates the urgency is not high, medium or low
	ErrInvalidUrgency = fmt.Errorf("please select a valid urgency")

	// ErrStaffNotFound indicates the assignee is not on the staff list
	ErrStaffNotFound = fmt.Errorf("staff member not found")

	// ErrAssignmentNotFound indicates no work list entry matches the given ID
	ErrAssignmentNotFound = fmt.Errorf("assignment not found")

	// ErrAssignmentCompleted indicates the work has already been signed off
	ErrAssignmentCompleted = fmt.Errorf("work already marked as completed")

	// ErrInvalidOTP indicates the completion OTP is not 6 digits
	ErrInvalidOTP = fmt.Errorf("please enter a valid 6-digit OTP")

	// ErrPhotoRequired indicates no completion photo was attached
	ErrPhotoRequired = fmt.Errorf("please upload a photo of the completed work")
)

// AssignmentView is a work list entry with its countdown
type AssignmentView struct {
	models.Assignment
	TimeRemaining string
	Overdue       bool
}

// ComplaintCounts are the counters on the supervisor complaints tab
type ComplaintCounts struct {
	Total      int
	Unassigned int
}

// ComplaintService handles complaint filing, lookup, assignment and completion
type ComplaintService struct {
	complaintRepo *database.ComplaintRepository
	staffRepo     *database.StaffRepository
	otpService    *OTPService
	codes         *validator.CodeValidator
	resolveWithin time.Duration
	metrics       *metrics.Metrics
	logger        *logrus.Logger
	now           func() time.Time
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo *database.ComplaintRepository,
	staffRepo *database.StaffRepository,
	otpService *OTPService,
	resolveWithin time.Duration,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		staffRepo:     staffRepo,
		otpService:    otpService,
		codes:         validator.NewCodeValidator(),
		resolveWithin: resolveWithin,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

// SubmitRoomComplaint files a guest room complaint and issues its OTP
func (s *ComplaintService) SubmitRoomComplaint(input models.ComplaintInput) (*models.SubmittedComplaint, error) {
	if err := checkComplaintInput(input, models.RoomCategories); err != nil {
		return nil, err
	}

	otp, err := s.otpService.GenerateOTP()
	if err != nil {
		return nil, err
	}

	roomNo := strings.TrimSpace(input.RoomNo)
	if roomNo == "" {
		roomNo = DefaultRoomNo
	}

	complaint := &models.Complaint{
		RoomNo:      roomNo,
		ITSNo:       strings.TrimSpace(input.ITSNo),
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Status:      models.ComplaintStatusPending,
		Urgency:     models.UrgencyMedium,
		CreatedAt:   s.now(),
		OTP:         otp,
	}
	return s.file(complaint, input.HasPhoto)
}

// SubmitAreaComplaint files a common area complaint and issues its reference number
func (s *ComplaintService) SubmitAreaComplaint(input models.ComplaintInput) (*models.SubmittedComplaint, error) {
	if err := checkComplaintInput(input, models.AreaCategories); err != nil {
		return nil, err
	}

	reference, err := s.otpService.GenerateReference()
	if err != nil {
		return nil, err
	}

	areaName := strings.TrimSpace(input.AreaName)
	if areaName == "" {
		areaName = DefaultAreaName
	}

	complaint := &models.Complaint{
		AreaName:    areaName,
		ITSNo:       strings.TrimSpace(input.ITSNo),
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Status:      models.ComplaintStatusPending,
		Urgency:     models.UrgencyMedium,
		CreatedAt:   s.now(),
		Reference:   reference,
	}
	return s.file(complaint, input.HasPhoto)
}

func (s *ComplaintService) file(complaint *models.Complaint, hasPhoto bool) (*models.SubmittedComplaint, error) {
	if err := s.complaintRepo.Create(complaint); err != nil {
		return nil, fmt.Errorf("failed to save complaint: %w", err)
	}

	s.metrics.ComplaintSubmitted(string(complaint.Type()), complaint.Category)
	s.logger.WithFields(logrus.Fields{
		"complaint_id": complaint.ID,
		"type":         complaint.Type(),
		"location":     complaint.Location(),
		"category":     complaint.Category,
		"photo":        hasPhoto,
	}).Info("Complaint submitted")

	return &models.SubmittedComplaint{
		Complaint:     *complaint,
		SubmittedAt:   complaint.CreatedAt,
		ResolveWithin: s.resolveWithin,
	}, nil
}

func checkComplaintInput(input models.ComplaintInput, categories []string) error {
	if strings.TrimSpace(input.ITSNo) == "" || input.Category == "" || strings.TrimSpace(input.Description) == "" {
		return ErrMissingComplaintFields
	}
	for _, category := range categories {
		if category == input.Category {
			return nil
		}
	}
	return ErrInvalidCategory
}

// TrackComplaint looks up the status page record for an exact complaint ID
func (s *ComplaintService) TrackComplaint(id string) (*models.TrackedComplaint, error) {
	tracked, err := s.complaintRepo.GetTracked(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to look up complaint: %w", err)
	}
	return tracked, nil
}

// ListComplaints returns every filed complaint
func (s *ComplaintService) ListComplaints() ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// Counts returns the total and unassigned complaint counts
func (s *ComplaintService) Counts() (*ComplaintCounts, error) {
	complaints, err := s.ListComplaints()
	if err != nil {
		return nil, err
	}

	counts := &ComplaintCounts{Total: len(complaints)}
	for _, complaint := range complaints {
		if !complaint.IsAssigned() {
			counts.Unassigned++
		}
	}
	return counts, nil
}

// AssignComplaint assigns or reassigns a complaint to a staff member
func (s *ComplaintService) AssignComplaint(id int, staffName, urgency string) (*models.Complaint, error) {
	if !models.IsValidUrgency(urgency) {
		return nil, ErrInvalidUrgency
	}

	staff, err := s.staffRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	known := false
	for _, member := range staff {
		if member.Name == staffName {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrStaffNotFound
	}

	complaint, err := s.complaintRepo.Assign(id, staffName, models.Urgency(urgency))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to assign complaint: %w", err)
	}

	s.metrics.ComplaintAssigned()
	s.logger.WithFields(logrus.Fields{
		"complaint_id": id,
		"assigned_to":  staffName,
		"urgency":      urgency,
	}).Info("Complaint assigned")

	return complaint, nil
}

// ListAssignments returns the staff work list with time remaining until each deadline
func (s *ComplaintService) ListAssignments() ([]AssignmentView, error) {
	assignments, err := s.complaintRepo.ListAssignments()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	now := s.now()
	views := make([]AssignmentView, 0, len(assignments))
	for _, assignment := range assignments {
		views = append(views, AssignmentView{
			Assignment:    assignment,
			TimeRemaining: utils.FormatTimeRemaining(assignment.Deadline, now),
			Overdue:       assignment.Deadline.Before(now),
		})
	}
	return views, nil
}

// HighPriorityCount counts work list entries with high urgency
func (s *ComplaintService) HighPriorityCount() (int, error) {
	assignments, err := s.complaintRepo.ListAssignments()
	if err != nil {
		return 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	count := 0
	for _, assignment := range assignments {
		if assignment.Urgency == models.UrgencyHigh {
			count++
		}
	}
	return count, nil
}

// GetAssignment returns a single work list entry
func (s *ComplaintService) GetAssignment(id int) (*models.Assignment, error) {
	assignment, err := s.complaintRepo.GetAssignment(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// CompleteAssignment signs off a job. The OTP must be 6 digits but is not
// compared with the guest's code, and the photo is not kept.
func (s *ComplaintService) CompleteAssignment(id int, otp string, hasPhoto bool) (*models.Assignment, error) {
	if err := s.codes.ValidateOTP(otp); err != nil {
		return nil, ErrInvalidOTP
	}
	if !hasPhoto {
		return nil, ErrPhotoRequired
	}

	assignment, err := s.GetAssignment(id)
	if err != nil {
		return nil, err
	}
	if assignment.Status == models.ComplaintStatusCompleted {
		return nil, ErrAssignmentCompleted
	}

	assignment, err = s.complaintRepo.CompleteAssignment(id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}

	s.metrics.AssignmentCompleted()
	s.logger.WithFields(logrus.Fields{
		"assignment_id": id,
		"room_no":       assignment.RoomNo,
	}).Info("Assignment completed")

	return assignment, nil
}
