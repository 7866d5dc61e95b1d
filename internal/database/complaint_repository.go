package database

import (
	"time"

	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// ComplaintRepository handles store operations for complaints, the status
// page records and the staff work list
type ComplaintRepository struct {
	db *MemoryDB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *MemoryDB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// List returns every complaint in filing order
func (r *ComplaintRepository) List() ([]models.Complaint, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	complaints := make([]models.Complaint, len(r.db.complaints))
	copy(complaints, r.db.complaints)
	return complaints, nil
}

// GetByID returns a single complaint
func (r *ComplaintRepository) GetByID(id int) (*models.Complaint, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.complaints {
		if r.db.complaints[i].ID == id {
			complaint := r.db.complaints[i]
			return &complaint, nil
		}
	}
	return nil, ErrNotFound
}

// Create stores a new complaint and fills in its ID
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.closed {
		return ErrClosed
	}

	complaint.ID = r.db.nextComplaintID
	r.db.nextComplaintID++
	r.db.complaints = append(r.db.complaints, *complaint)
	return nil
}

// Assign sets the assignee and urgency of a complaint
func (r *ComplaintRepository) Assign(id int, staffName string, urgency models.Urgency) (*models.Complaint, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.complaints {
		if r.db.complaints[i].ID == id {
			r.db.complaints[i].AssignedTo = staffName
			r.db.complaints[i].Urgency = urgency
			complaint := r.db.complaints[i]
			return &complaint, nil
		}
	}
	return nil, ErrNotFound
}

// GetTracked returns the status page record for a complaint ID.
// The ID must match exactly; no normalisation is applied.
func (r *ComplaintRepository) GetTracked(id string) (*models.TrackedComplaint, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	tracked, ok := r.db.tracked[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tracked, nil
}

// ListAssignments returns the staff work list
func (r *ComplaintRepository) ListAssignments() ([]models.Assignment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	assignments := make([]models.Assignment, len(r.db.assignments))
	copy(assignments, r.db.assignments)
	return assignments, nil
}

// GetAssignment returns a single work list entry
func (r *ComplaintRepository) GetAssignment(id int) (*models.Assignment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.assignments {
		if r.db.assignments[i].ID == id {
			assignment := r.db.assignments[i]
			return &assignment, nil
		}
	}
	return nil, ErrNotFound
}

// CompleteAssignment marks a work list entry as completed
func (r *ComplaintRepository) CompleteAssignment(id int, completedAt time.Time) (*models.Assignment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.assignments {
		if r.db.assignments[i].ID == id {
			r.db.assignments[i].Status = models.ComplaintStatusCompleted
			r.db.assignments[i].CompletedAt = &completedAt
			assignment := r.db.assignments[i]
			return &assignment, nil
		}
	}
	return nil, ErrNotFound
}
