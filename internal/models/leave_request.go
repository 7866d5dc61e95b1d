package models

import "time"

// LeaveStatus represents the decision on a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is a staff member's request for time off
type LeaveRequest struct {
	ID        int         `json:"id"`
	StaffName string      `json:"staff_name"`
	EmpID     string      `json:"emp_id"`
	FromDate  string      `json:"from_date"`
	ToDate    string      `json:"to_date"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`
	DecidedAt *time.Time  `json:"decided_at,omitempty"`
}

// LeaveInput holds the fields of the leave request form
type LeaveInput struct {
	StaffName string
	EmpID     string
	FromDate  string
	ToDate    string
	Reason    string
}
