package models

// StaffRole is the role a staff member holds within a department
type StaffRole string

const (
	StaffRoleStaff      StaffRole = "Staff"
	StaffRoleSupervisor StaffRole = "Supervisor"
)

// IsValidStaffRole reports whether r is a known staff role
func IsValidStaffRole(r string) bool {
	return r == string(StaffRoleStaff) || r == string(StaffRoleSupervisor)
}

// Staff is a maintenance staff member
type Staff struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	EmpID              string    `json:"emp_id"`
	Department         string    `json:"department"`
	Role               StaffRole `json:"role"`
	JoinDate           string    `json:"join_date"`
	AssignedComplaints int       `json:"assigned_complaints"`
}

// StaffInput holds the fields of the admin "add staff" form
type StaffInput struct {
	Name       string
	EmpID      string
	Department string
	Role       string
	JoinDate   string
}

// Department groups staff by trade. Counters are display values only.
type Department struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	StaffCount       int    `json:"staff_count"`
	ActiveComplaints int    `json:"active_complaints"`
}

// Profile is the header card shown on each role dashboard
type Profile struct {
	Name       string `json:"name"`
	EmpID      string `json:"emp_id"`
	Department string `json:"department"`
	JoinDate   string `json:"join_date,omitempty"`
	Initials   string `json:"initials"`
}

// StaffPerformance is a row of the supervisor performance view
type StaffPerformance struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	AvgTime   string `json:"avg_time"`
}

// AttendanceDay is one bar of the weekly attendance chart
type AttendanceDay struct {
	Name    string `json:"name"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// AttendanceMark records whether a staff member was present on a date
type AttendanceMark struct {
	StaffID int    `json:"staff_id"`
	Date    string `json:"date"`
	Present bool   `json:"present"`
}
