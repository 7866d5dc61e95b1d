package database

import (
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// StaffRepository handles store operations for staff, departments and
// attendance
type StaffRepository struct {
	db *MemoryDB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *MemoryDB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List returns every staff member
func (r *StaffRepository) List() ([]models.Staff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	staff := make([]models.Staff, len(r.db.staff))
	copy(staff, r.db.staff)
	return staff, nil
}

// GetByID returns a single staff member
func (r *StaffRepository) GetByID(id int) (*models.Staff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.staff {
		if r.db.staff[i].ID == id {
			member := r.db.staff[i]
			return &member, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmpID returns the staff member with the given employee ID
func (r *StaffRepository) GetByEmpID(empID string) (*models.Staff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.staff {
		if r.db.staff[i].EmpID == empID {
			member := r.db.staff[i]
			return &member, nil
		}
	}
	return nil, ErrNotFound
}

// Create stores a new staff member and fills in its ID
func (r *StaffRepository) Create(member *models.Staff) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.closed {
		return ErrClosed
	}

	member.ID = r.db.nextStaffID
	r.db.nextStaffID++
	r.db.staff = append(r.db.staff, *member)
	return nil
}

// ListDepartments returns every department
func (r *StaffRepository) ListDepartments() ([]models.Department, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.closed {
		return nil, ErrClosed
	}

	departments := make([]models.Department, len(r.db.departments))
	copy(departments, r.db.departments)
	return departments, nil
}

// CreateDepartment stores a new department and fills in its ID
func (r *StaffRepository) CreateDepartment(department *models.Department) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.closed {
		return ErrClosed
	}

	department.ID = r.db.nextDepartmentID
	r.db.nextDepartmentID++
	r.db.departments = append(r.db.departments, *department)
	return nil
}

// ListPerformance returns the staff performance figures
func (r *StaffRepository) ListPerformance() ([]models.StaffPerformance, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	performance := make([]models.StaffPerformance, len(r.db.performance))
	copy(performance, r.db.performance)
	return performance, nil
}

// AttendanceWeek returns the weekly attendance chart data
func (r *StaffRepository) AttendanceWeek() ([]models.AttendanceDay, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	week := make([]models.AttendanceDay, len(r.db.attendanceWeek))
	copy(week, r.db.attendanceWeek)
	return week, nil
}

// SaveAttendance replaces the attendance marks recorded for a date
func (r *StaffRepository) SaveAttendance(date string, marks []models.AttendanceMark) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.closed {
		return ErrClosed
	}

	stored := make([]models.AttendanceMark, len(marks))
	copy(stored, marks)
	r.db.attendance[date] = stored
	return nil
}

// Attendance returns the marks recorded for a date, or nil if none were taken
func (r *StaffRepository) Attendance(date string) ([]models.AttendanceMark, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	marks, ok := r.db.attendance[date]
	if !ok {
		return nil, nil
	}
	result := make([]models.AttendanceMark, len(marks))
	copy(result, marks)
	return result, nil
}
