package database

import (
	"time"

	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// LeaveRequestRepository handles store operations for leave requests
type LeaveRequestRepository struct {
	db *MemoryDB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *MemoryDB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

// List returns every leave request
func (r *LeaveRequestRepository) List() ([]models.LeaveRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	requests := make([]models.LeaveRequest, len(r.db.leaveRequests))
	copy(requests, r.db.leaveRequests)
	return requests, nil
}

// ListByEmpID returns the leave requests filed by one employee
func (r *LeaveRequestRepository) ListByEmpID(empID string) ([]models.LeaveRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	var requests []models.LeaveRequest
	for _, request := range r.db.leaveRequests {
		if request.EmpID == empID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

// GetByID returns a single leave request
func (r *LeaveRequestRepository) GetByID(id int) (*models.LeaveRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.leaveRequests {
		if r.db.leaveRequests[i].ID == id {
			request := r.db.leaveRequests[i]
			return &request, nil
		}
	}
	return nil, ErrNotFound
}

// Create stores a new leave request and fills in its ID
func (r *LeaveRequestRepository) Create(request *models.LeaveRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.closed {
		return ErrClosed
	}

	request.ID = r.db.nextLeaveID
	r.db.nextLeaveID++
	r.db.leaveRequests = append(r.db.leaveRequests, *request)
	return nil
}

// UpdateStatus records a decision on a leave request
func (r *LeaveRequestRepository) UpdateStatus(id int, status models.LeaveStatus, decidedAt time.Time) (*models.LeaveRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.leaveRequests {
		if r.db.leaveRequests[i].ID == id {
			r.db.leaveRequests[i].Status = status
			r.db.leaveRequests[i].DecidedAt = &decidedAt
			request := r.db.leaveRequests[i]
			return &request, nil
		}
	}
	return nil, ErrNotFound
}
