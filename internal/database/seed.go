package database

import (
	"time"

	"github.com/Adarshkumar111/Maintenance/internal/models"
)

// Demo data set.
//
// The records below are the fixed mock data every dashboard starts from. They
// are reloaded by MemoryDB.Reset, so anything changed through the UI is lost on
// reset or restart.
//
//	complaints        5 filed complaints, 2 of them unassigned
//	tracked           2 complaints reachable from the status page (123456, 789012)
//	assignments       3 jobs on the staff work list (Rahul Kumar, Electrician)
//	staff             5 members across 5 departments
//	materialRequests  3 store requests: one pending, one available, one out of stock
//	leaveRequests     1 pending + 3 approved

const seedTimeLayout = "2006-01-02T15:04:05"

// seedTime parses a literal seed timestamp in server local time
func seedTime(value string) time.Time {
	t, err := time.ParseInLocation(seedTimeLayout, value, time.Local)
	if err != nil {
		panic("database: bad seed time " + value)
	}
	return t
}

// seed replaces every table with the demo data. Callers hold db.mu.
func (db *MemoryDB) seed() {
	db.departments = []models.Department{
		{ID: 1, Name: "Electrician", StaffCount: 5, ActiveComplaints: 12},
		{ID: 2, Name: "Plumbing", StaffCount: 4, ActiveComplaints: 8},
		{ID: 3, Name: "Maintenance", StaffCount: 6, ActiveComplaints: 15},
		{ID: 4, Name: "IT", StaffCount: 3, ActiveComplaints: 6},
		{ID: 5, Name: "Housekeeping", StaffCount: 8, ActiveComplaints: 20},
		{ID: 6, Name: "Carpentry", StaffCount: 3, ActiveComplaints: 5},
	}
	db.nextDepartmentID = len(db.departments) + 1

	db.staff = []models.Staff{
		{ID: 1, Name: "Rahul Kumar", EmpID: "EMP001", Department: "Electrician", Role: models.StaffRoleStaff, JoinDate: "2023-01-15", AssignedComplaints: 3},
		{ID: 2, Name: "Priya Sharma", EmpID: "EMP002", Department: "Housekeeping", Role: models.StaffRoleSupervisor, JoinDate: "2022-11-20", AssignedComplaints: 0},
		{ID: 3, Name: "Amit Patel", EmpID: "EMP003", Department: "Plumbing", Role: models.StaffRoleStaff, JoinDate: "2023-03-10", AssignedComplaints: 2},
		{ID: 4, Name: "Sneha Reddy", EmpID: "EMP004", Department: "IT", Role: models.StaffRoleStaff, JoinDate: "2023-05-05", AssignedComplaints: 1},
		{ID: 5, Name: "Vikram Singh", EmpID: "EMP005", Department: "Maintenance", Role: models.StaffRoleSupervisor, JoinDate: "2022-08-15", AssignedComplaints: 0},
	}
	db.nextStaffID = len(db.staff) + 1

	db.complaints = []models.Complaint{
		{ID: 1, RoomNo: "101", ITSNo: "ITS12345", Category: "Electrical", Description: "Fan not working", Status: models.ComplaintStatusPending, Urgency: models.UrgencyHigh, CreatedAt: seedTime("2024-11-03T10:30:00"), AssignedTo: "Rahul Kumar"},
		{ID: 2, RoomNo: "205", ITSNo: "ITS12346", Category: "Plumbing", Description: "Tap leaking", Status: models.ComplaintStatusInProgress, Urgency: models.UrgencyMedium, CreatedAt: seedTime("2024-11-03T09:15:00"), AssignedTo: "Amit Patel"},
		{ID: 3, RoomNo: "310", ITSNo: "ITS12347", Category: "Housekeeping", Description: "Room cleaning needed", Status: models.ComplaintStatusCompleted, Urgency: models.UrgencyLow, CreatedAt: seedTime("2024-11-02T14:20:00")},
		{ID: 4, RoomNo: "112", ITSNo: "ITS12348", Category: "Electrical", Description: "Light not working", Status: models.ComplaintStatusPending, Urgency: models.UrgencyHigh, CreatedAt: seedTime("2024-11-03T11:00:00")},
		{ID: 5, RoomNo: "Lobby", ITSNo: "ITS12349", Category: "Maintenance", Description: "AC not cooling", Status: models.ComplaintStatusInProgress, Urgency: models.UrgencyHigh, CreatedAt: seedTime("2024-11-03T08:45:00"), AssignedTo: "Vikram Singh"},
	}
	db.nextComplaintID = len(db.complaints) + 1

	db.tracked = map[string]models.TrackedComplaint{
		"123456": {
			ID:          "123456",
			Type:        models.ComplaintTypeRoom,
			RoomNo:      "101",
			Category:    "Electrical",
			Description: "Ceiling fan not working",
			Status:      models.ComplaintStatusInProgress,
			AssignedTo:  "Rajesh Kumar",
			CreatedAt:   "2024-11-03 10:30 AM",
			OTP:         "849302",
			Timeline: []models.TimelineStep{
				{Status: "Submitted", Time: "2024-11-03 10:30 AM", Completed: true},
				{Status: "Assigned to Staff", Time: "2024-11-03 10:45 AM", Completed: true},
				{Status: "Work in Progress", Time: "2024-11-03 11:00 AM", Completed: true},
				{Status: "Completed", Time: "Pending", Completed: false},
			},
		},
		"789012": {
			ID:          "789012",
			Type:        models.ComplaintTypeArea,
			AreaName:    "Lobby",
			Category:    "Housekeeping",
			Description: "Floor needs cleaning",
			Status:      models.ComplaintStatusCompleted,
			AssignedTo:  "Amit Sharma",
			CreatedAt:   "2024-11-02 02:15 PM",
			CompletedAt: "2024-11-02 03:30 PM",
			Timeline: []models.TimelineStep{
				{Status: "Submitted", Time: "2024-11-02 02:15 PM", Completed: true},
				{Status: "Assigned to Staff", Time: "2024-11-02 02:20 PM", Completed: true},
				{Status: "Work in Progress", Time: "2024-11-02 02:45 PM", Completed: true},
				{Status: "Completed", Time: "2024-11-02 03:30 PM", Completed: true},
			},
		},
	}

	db.assignments = []models.Assignment{
		{ID: 1, RoomNo: "101", Category: "Electrical", Description: "Fan not working properly, making noise", Urgency: models.UrgencyHigh, AssignedAt: seedTime("2024-11-03T10:30:00"), Deadline: seedTime("2024-11-03T16:30:00"), Status: models.ComplaintStatusPending, ITSNo: "ITS12345"},
		{ID: 2, RoomNo: "205", Category: "Electrical", Description: "Light flickering in bathroom", Urgency: models.UrgencyMedium, AssignedAt: seedTime("2024-11-03T09:00:00"), Deadline: seedTime("2024-11-03T18:00:00"), Status: models.ComplaintStatusInProgress, ITSNo: "ITS12346"},
		{ID: 3, RoomNo: "Lobby", Category: "Electrical", Description: "Main chandelier bulbs need replacement", Urgency: models.UrgencyLow, AssignedAt: seedTime("2024-11-02T14:00:00"), Deadline: seedTime("2024-11-04T14:00:00"), Status: models.ComplaintStatusPending, ITSNo: "ITS12347"},
	}

	db.rooms = []models.Room{
		{ID: 1, RoomNo: "101", Floor: 1, Type: "Single", QRGenerated: true},
		{ID: 2, RoomNo: "102", Floor: 1, Type: "Double", QRGenerated: true},
		{ID: 3, RoomNo: "205", Floor: 2, Type: "Suite", QRGenerated: true},
		{ID: 4, RoomNo: "310", Floor: 3, Type: "Double", QRGenerated: false},
	}

	db.areas = []models.Area{
		{ID: 1, Name: "Lobby", QRGenerated: true},
		{ID: 2, Name: "Dining Hall", QRGenerated: true},
		{ID: 3, Name: "Gym", QRGenerated: false},
		{ID: 4, Name: "Swimming Pool", QRGenerated: true},
	}

	db.leaveRequests = []models.LeaveRequest{
		{ID: 1, StaffName: "Rahul Kumar", EmpID: "EMP001", FromDate: "2024-11-10", ToDate: "2024-11-12", Reason: "Medical", Status: models.LeaveStatusPending},
		{ID: 2, StaffName: "Amit Patel", EmpID: "EMP003", FromDate: "2024-11-05", ToDate: "2024-11-06", Reason: "Personal", Status: models.LeaveStatusApproved},
		{ID: 3, StaffName: "Rahul Kumar", EmpID: "EMP001", FromDate: "2024-10-15", ToDate: "2024-10-17", Reason: "Medical", Status: models.LeaveStatusApproved},
		{ID: 4, StaffName: "Rahul Kumar", EmpID: "EMP001", FromDate: "2024-09-20", ToDate: "2024-09-21", Reason: "Personal", Status: models.LeaveStatusApproved},
	}
	db.nextLeaveID = len(db.leaveRequests) + 1

	db.materialRequests = []models.MaterialRequest{
		{ID: 1, ItemName: "LED Bulb 15W", Quantity: 5, RoomNo: "101", RequestedBy: "Rahul Kumar", Department: "Electrician", Status: models.MaterialStatusPending, RequestDate: seedTime("2024-11-03T10:30:00"), InStock: true},
		{ID: 2, ItemName: `Pipe Fitting 2"`, Quantity: 2, RoomNo: "205", RequestedBy: "Amit Patel", Department: "Plumbing", Status: models.MaterialStatusAvailable, RequestDate: seedTime("2024-11-03T09:00:00"), InStock: true, PermissionID: "PRM12345"},
		{ID: 3, ItemName: "Paint White 5L", Quantity: 10, RoomNo: "Lobby", RequestedBy: "Vikram Singh", Department: "Maintenance", Status: models.MaterialStatusRequested, RequestDate: seedTime("2024-11-02T14:00:00"), InStock: false},
	}
	db.nextMaterialID = len(db.materialRequests) + 1

	db.performance = []models.StaffPerformance{
		{Name: "Rahul", Completed: 45, Pending: 3, AvgTime: "2.5h"},
		{Name: "Amit", Completed: 38, Pending: 2, AvgTime: "3.1h"},
		{Name: "Priya", Completed: 52, Pending: 4, AvgTime: "2.2h"},
		{Name: "Sneha", Completed: 41, Pending: 1, AvgTime: "2.8h"},
	}

	db.attendanceWeek = []models.AttendanceDay{
		{Name: "Mon", Present: 8, Absent: 0},
		{Name: "Tue", Present: 7, Absent: 1},
		{Name: "Wed", Present: 8, Absent: 0},
		{Name: "Thu", Present: 6, Absent: 2},
		{Name: "Fri", Present: 8, Absent: 0},
	}

	db.attendance = make(map[string][]models.AttendanceMark)
}
