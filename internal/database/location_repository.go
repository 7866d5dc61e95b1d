package database

import (
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// LocationRepository handles store operations for rooms and common areas
type LocationRepository struct {
	db *MemoryDB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *MemoryDB) *LocationRepository {
	return &LocationRepository{db: db}
}

// ListRooms returns every room
func (r *LocationRepository) ListRooms() ([]models.Room, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	rooms := make([]models.Room, len(r.db.rooms))
	copy(rooms, r.db.rooms)
	return rooms, nil
}

// GetRoom returns a single room
func (r *LocationRepository) GetRoom(id int) (*models.Room, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.rooms {
		if r.db.rooms[i].ID == id {
			room := r.db.rooms[i]
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

// MarkRoomQRGenerated flags a room's QR code as generated
func (r *LocationRepository) MarkRoomQRGenerated(id int) (*models.Room, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.rooms {
		if r.db.rooms[i].ID == id {
			r.db.rooms[i].QRGenerated = true
			room := r.db.rooms[i]
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

// ListAreas returns every common area
func (r *LocationRepository) ListAreas() ([]models.Area, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	areas := make([]models.Area, len(r.db.areas))
	copy(areas, r.db.areas)
	return areas, nil
}

// GetArea returns a single common area
func (r *LocationRepository) GetArea(id int) (*models.Area, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.areas {
		if r.db.areas[i].ID == id {
			area := r.db.areas[i]
			return &area, nil
		}
	}
	return nil, ErrNotFound
}

// MarkAreaQRGenerated flags an area's QR code as generated
func (r *LocationRepository) MarkAreaQRGenerated(id int) (*models.Area, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.areas {
		if r.db.areas[i].ID == id {
			r.db.areas[i].QRGenerated = true
			area := r.db.areas[i]
			return &area, nil
		}
	}
	return nil, ErrNotFound
}
