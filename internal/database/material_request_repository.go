package database

import (
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// MaterialRequestRepository handles store operations for material requests
type MaterialRequestRepository struct {
	db *MemoryDB
}

// NewMaterialRequestRepository creates a new material request repository
func NewMaterialRequestRepository(db *MemoryDB) *MaterialRequestRepository {
	return &MaterialRequestRepository{db: db}
}

// List returns every material request
func (r *MaterialRequestRepository) List() ([]models.MaterialRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	requests := make([]models.MaterialRequest, len(r.db.materialRequests))
	copy(requests, r.db.materialRequests)
	return requests, nil
}

// GetByID returns a single material request
func (r *MaterialRequestRepository) GetByID(id int) (*models.MaterialRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.materialRequests {
		if r.db.materialRequests[i].ID == id {
			request := r.db.materialRequests[i]
			return &request, nil
		}
	}
	return nil, ErrNotFound
}

// GetByPermissionID returns the request carrying the given permission ID.
// Matching is exact string equality.
func (r *MaterialRequestRepository) GetByPermissionID(permissionID string) (*models.MaterialRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if permissionID == "" {
		return nil, ErrNotFound
	}
	for i := range r.db.materialRequests {
		if r.db.materialRequests[i].PermissionID == permissionID {
			request := r.db.materialRequests[i]
			return &request, nil
		}
	}
	return nil, ErrNotFound
}

// Create stores a new material request and fills in its ID
func (r *MaterialRequestRepository) Create(request *models.MaterialRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.closed {
		return ErrClosed
	}

	request.ID = r.db.nextMaterialID
	r.db.nextMaterialID++
	r.db.materialRequests = append(r.db.materialRequests, *request)
	return nil
}

// Update replaces a stored material request with the given value
func (r *MaterialRequestRepository) Update(request *models.MaterialRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.materialRequests {
		if r.db.materialRequests[i].ID == request.ID {
			r.db.materialRequests[i] = *request
			return nil
		}
	}
	return ErrNotFound
}
