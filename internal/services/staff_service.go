package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

var (
	// ErrMissingStaffFields indicates a required field on the add staff form was blank
	ErrMissingStaffFields = fmt.Errorf("name, employee ID, department and role are required")

	// ErrInvalidStaffRole indicates the role is neither Staff nor Supervisor
	ErrInvalidStaffRole = fmt.Errorf("role must be Staff or Supervisor")

	// ErrDuplicateEmpID indicates the employee ID is already in use
	ErrDuplicateEmpID = fmt.Errorf("employee ID already exists")

	// ErrDepartmentNotFound indicates the department does not exist
	ErrDepartmentNotFound = fmt.Errorf("department not found")

	// ErrDuplicateDepartment indicates a department with that name already exists
	ErrDuplicateDepartment = fmt.Errorf("department already exists")

	// ErrMissingDepartmentName indicates the department name was blank
	ErrMissingDepartmentName = fmt.Errorf("department name is required")

	// ErrInvalidAttendanceDate indicates the attendance date is not YYYY-MM-DD
	ErrInvalidAttendanceDate = fmt.Errorf("invalid attendance date")
)

// StaffService handles staff, department and attendance operations
type StaffService struct {
	staffRepo *database.StaffRepository
	logger    *logrus.Logger
	now       func() time.Time
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo *database.StaffRepository, logger *logrus.Logger) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// ListStaff returns every staff member
func (s *StaffService) ListStaff() ([]models.Staff, error) {
	staff, err := s.staffRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// AddStaff registers a staff member from the admin form
func (s *StaffService) AddStaff(input models.StaffInput) (*models.Staff, error) {
	name := strings.TrimSpace(input.Name)
	empID := strings.TrimSpace(input.EmpID)
	if name == "" || empID == "" || input.Department == "" || input.Role == "" {
		return nil, ErrMissingStaffFields
	}
	if !models.IsValidStaffRole(input.Role) {
		return nil, ErrInvalidStaffRole
	}

	if existing, err := s.staffRepo.GetByEmpID(empID); err == nil && existing != nil {
		return nil, ErrDuplicateEmpID
	} else if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("failed to check employee ID: %w", err)
	}

	department, err := s.findDepartment(input.Department)
	if err != nil {
		return nil, err
	}

	joinDate := strings.TrimSpace(input.JoinDate)
	if joinDate == "" {
		joinDate = s.now().Format(leaveDateLayout)
	}

	member := &models.Staff{
		Name:       name,
		EmpID:      empID,
		Department: department.Name,
		Role:       models.StaffRole(input.Role),
		JoinDate:   joinDate,
	}
	if err := s.staffRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to save staff member: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"staff_id":   member.ID,
		"emp_id":     member.EmpID,
		"department": member.Department,
	}).Info("Staff member added")

	return member, nil
}

// ListDepartments returns every department
func (s *StaffService) ListDepartments() ([]models.Department, error) {
	departments, err := s.staffRepo.ListDepartments()
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// AddDepartment creates an empty department
func (s *StaffService) AddDepartment(name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingDepartmentName
	}
	if _, err := s.findDepartment(name); err == nil {
		return nil, ErrDuplicateDepartment
	} else if !errors.Is(err, ErrDepartmentNotFound) {
		return nil, err
	}

	department := &models.Department{Name: name}
	if err := s.staffRepo.CreateDepartment(department); err != nil {
		return nil, fmt.Errorf("failed to save department: %w", err)
	}

	s.logger.WithField("department", name).Info("Department added")
	return department, nil
}

// findDepartment matches department names without regard to case
func (s *StaffService) findDepartment(name string) (*models.Department, error) {
	departments, err := s.ListDepartments()
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if strings.EqualFold(departments[i].Name, name) {
			return &departments[i], nil
		}
	}
	return nil, ErrDepartmentNotFound
}

// Performance returns the performance cards in display order
func (s *StaffService) Performance() ([]models.StaffPerformance, error) {
	performance, err := s.staffRepo.ListPerformance()
	if err != nil {
		return nil, fmt.Errorf("failed to list performance: %w", err)
	}
	return performance, nil
}

// TopPerformers returns up to n staff ordered by completed jobs, highest first
func (s *StaffService) TopPerformers(n int) ([]models.StaffPerformance, error) {
	performance, err := s.Performance()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].Completed > performance[j].Completed
	})
	if n < len(performance) {
		performance = performance[:n]
	}
	return performance, nil
}

// AttendanceWeek returns the weekly attendance chart data
func (s *StaffService) AttendanceWeek() ([]models.AttendanceDay, error) {
	week, err := s.staffRepo.AttendanceWeek()
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return week, nil
}

// Today returns the current date in attendance format
func (s *StaffService) Today() string {
	return s.now().Format(leaveDateLayout)
}

// MarkAttendance records every staff member for date; those in presentIDs
// are present and the rest absent
func (s *StaffService) MarkAttendance(date string, presentIDs []int) ([]models.AttendanceMark, error) {
	if _, err := time.Parse(leaveDateLayout, date); err != nil {
		return nil, ErrInvalidAttendanceDate
	}

	staff, err := s.ListStaff()
	if err != nil {
		return nil, err
	}

	present := make(map[int]bool, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = true
	}

	marks := make([]models.AttendanceMark, 0, len(staff))
	for _, member := range staff {
		marks = append(marks, models.AttendanceMark{
			StaffID: member.ID,
			Date:    date,
			Present: present[member.ID],
		})
	}
	if err := s.staffRepo.SaveAttendance(date, marks); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"date":    date,
		"present": len(present),
		"total":   len(marks),
	}).Info("Attendance marked")

	return marks, nil
}

// Attendance returns staff ID to presence for date. The map is empty if
// attendance has not been taken.
func (s *StaffService) Attendance(date string) (map[int]bool, error) {
	marks, err := s.staffRepo.Attendance(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	result := make(map[int]bool, len(marks))
	for _, mark := range marks {
		result[mark.StaffID] = mark.Present
	}
	return result, nil
}
