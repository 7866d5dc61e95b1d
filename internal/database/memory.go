package database

import (
	"errors"
	"sync"

	"github.com/Adarshkumar111/Maintenance/internal/models"
)

var (
	// ErrNotFound indicates no record matched the lookup
	ErrNotFound = errors.New("record not found")

	// ErrClosed indicates the store has been shut down
	ErrClosed = errors.New("database is closed")
)

// DB interface defines the lifecycle operations of the backing store
type DB interface {
	Ping() error
	Reset()
	Close() error
}

// MemoryDB is the process-local store holding the demo data set.
// Every table is guarded by mu; repositories take the lock for each call.
type MemoryDB struct {
	mu     sync.RWMutex
	closed bool

	complaints       []models.Complaint
	tracked          map[string]models.TrackedComplaint
	assignments      []models.Assignment
	staff            []models.Staff
	departments      []models.Department
	rooms            []models.Room
	areas            []models.Area
	leaveRequests    []models.LeaveRequest
	materialRequests []models.MaterialRequest
	performance      []models.StaffPerformance
	attendanceWeek   []models.AttendanceDay
	attendance       map[string][]models.AttendanceMark // keyed by YYYY-MM-DD

	nextComplaintID  int
	nextStaffID      int
	nextDepartmentID int
	nextLeaveID      int
	nextMaterialID   int
}

// NewMemoryDB creates a store populated with the demo data set
func NewMemoryDB() *MemoryDB {
	db := &MemoryDB{}
	db.seed()
	return db
}

// Ping reports whether the store is usable
func (db *MemoryDB) Ping() error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return ErrClosed
	}
	return nil
}

// Reset discards every change and restores the demo data set
func (db *MemoryDB) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.seed()
}

// Close marks the store as closed. Data is discarded.
func (db *MemoryDB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.closed = true
	return nil
}
