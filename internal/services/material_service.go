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
	"github.com/Adarshkumar111/Maintenance/pkg/validator"
)

var (
	// ErrMaterialNotFound indicates no material request matches the given ID
	ErrMaterialNotFound = fmt.Errorf("material request not found")

	// ErrMaterialNotAvailable indicates the request is not pending or the item is out of stock
	ErrMaterialNotAvailable = fmt.Errorf("only pending, in-stock requests can be marked available")

	// ErrInvalidPermissionID indicates no request carries the entered permission ID
	ErrInvalidPermissionID = fmt.Errorf("Invalid Permission ID")

	// ErrInvalidMaterialRequest indicates the item name or quantity was missing
	ErrInvalidMaterialRequest = fmt.Errorf("item name and a quantity of at least 1 are required")
)

// MaterialService handles the store workflow for material requests
type MaterialService struct {
	materialRepo *database.MaterialRequestRepository
	otpService   *OTPService
	codes        *validator.CodeValidator
	metrics      *metrics.Metrics
	logger       *logrus.Logger
	now          func() time.Time
}

// NewMaterialService creates a new material service
func NewMaterialService(
	materialRepo *database.MaterialRequestRepository,
	otpService *OTPService,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		otpService:   otpService,
		codes:        validator.NewCodeValidator(),
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Search returns requests whose item name, requester, department or room
// contains the query, ignoring case. An empty query returns everything.
func (s *MaterialService) Search(query string) ([]models.MaterialRequest, error) {
	requests, err := s.materialRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list material requests: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return requests, nil
	}

	var matched []models.MaterialRequest
	for _, request := range requests {
		for _, field := range []string{request.ItemName, request.RequestedBy, request.Department, request.RoomNo} {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, request)
				break
			}
		}
	}
	return matched, nil
}

// Stats counts requests by store status
func (s *MaterialService) Stats() (*models.MaterialStats, error) {
	requests, err := s.materialRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list material requests: %w", err)
	}

	stats := &models.MaterialStats{}
	for _, request := range requests {
		switch request.Status {
		case models.MaterialStatusPending:
			stats.Pending++
		case models.MaterialStatusAvailable:
			stats.Available++
		case models.MaterialStatusRequested:
			stats.OutOfStock++
		case models.MaterialStatusCollected:
			stats.Collected++
		}
	}
	return stats, nil
}

// MarkAvailable issues a permission ID for a pending, in-stock request
func (s *MaterialService) MarkAvailable(id int) (*models.MaterialRequest, error) {
	request, err := s.materialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to get material request: %w", err)
	}

	if !request.CanMarkAvailable() {
		return nil, ErrMaterialNotAvailable
	}

	permissionID, err := s.otpService.GeneratePermissionID()
	if err != nil {
		return nil, err
	}

	request.Status = models.MaterialStatusAvailable
	request.PermissionID = permissionID
	if err := s.materialRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update material request: %w", err)
	}

	s.metrics.MaterialStatus(string(request.Status))
	s.logger.WithFields(logrus.Fields{
		"request_id":    request.ID,
		"item":          request.ItemName,
		"permission_id": permissionID,
	}).Info("Material marked available")

	return request, nil
}

// VerifyPermission hands over the item carrying the permission ID and marks it collected
func (s *MaterialService) VerifyPermission(permissionID string) (*models.MaterialRequest, error) {
	if err := s.codes.ValidatePermissionID(permissionID); err != nil {
		return nil, ErrInvalidPermissionID
	}

	request, err := s.materialRepo.GetByPermissionID(permissionID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidPermissionID
		}
		return nil, fmt.Errorf("failed to look up permission ID: %w", err)
	}

	collectedAt := s.now()
	request.Status = models.MaterialStatusCollected
	request.CollectedAt = &collectedAt
	if err := s.materialRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update material request: %w", err)
	}

	s.metrics.MaterialStatus(string(request.Status))
	s.logger.WithFields(logrus.Fields{
		"request_id":    request.ID,
		"permission_id": permissionID,
	}).Info("Material collected")

	return request, nil
}

// RequestMaterial files a store request from the staff dashboard
func (s *MaterialService) RequestMaterial(input models.MaterialInput) (*models.MaterialRequest, error) {
	if strings.TrimSpace(input.ItemName) == "" || input.Quantity < 1 {
		return nil, ErrInvalidMaterialRequest
	}

	request := &models.MaterialRequest{
		ItemName:    strings.TrimSpace(input.ItemName),
		Quantity:    input.Quantity,
		RoomNo:      input.RoomNo,
		RequestedBy: input.RequestedBy,
		Department:  input.Department,
		Description: strings.TrimSpace(input.Description),
		Status:      models.MaterialStatusPending,
		RequestDate: s.now(),
		InStock:     true,
	}
	if err := s.materialRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to save material request: %w", err)
	}

	s.metrics.MaterialStatus(string(request.Status))
	s.logger.WithFields(logrus.Fields{
		"request_id":   request.ID,
		"item":         request.ItemName,
		"quantity":     request.Quantity,
		"requested_by": request.RequestedBy,
	}).Info("Material requested")

	return request, nil
}
