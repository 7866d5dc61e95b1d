package database

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adarshkumar111/Maintenance/internal/models"
)

func TestMemoryDBLifecycle(t *testing.T) {
	db := NewMemoryDB()
	require.NoError(t, db.Ping())

	require.NoError(t, db.Close())
	assert.ErrorIs(t, db.Ping(), ErrClosed)

	repo := NewComplaintRepository(db)
	_, err := repo.List()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMemoryDBReset(t *testing.T) {
	db := NewMemoryDB()
	complaints := NewComplaintRepository(db)
	materials := NewMaterialRequestRepository(db)

	err := complaints.Create(&models.Complaint{RoomNo: "999", Category: "Plumbing"})
	require.NoError(t, err)

	request, err := materials.GetByID(1)
	require.NoError(t, err)
	request.Status = models.MaterialStatusCollected
	require.NoError(t, materials.Update(request))

	db.Reset()

	list, err := complaints.List()
	require.NoError(t, err)
	assert.Len(t, list, 5)

	request, err = materials.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.MaterialStatusPending, request.Status)
}

func TestComplaintRepository(t *testing.T) {
	db := NewMemoryDB()
	repo := NewComplaintRepository(db)

	t.Run("Create assigns next ID", func(t *testing.T) {
		complaint := &models.Complaint{RoomNo: "101", Category: "Electrical", Status: models.ComplaintStatusPending}
		require.NoError(t, repo.Create(complaint))
		assert.Equal(t, 6, complaint.ID)

		stored, err := repo.GetByID(6)
		require.NoError(t, err)
		assert.Equal(t, "Electrical", stored.Category)
	})

	t.Run("List returns a copy", func(t *testing.T) {
		list, err := repo.List()
		require.NoError(t, err)
		list[0].Category = "changed"

		stored, err := repo.GetByID(list[0].ID)
		require.NoError(t, err)
		assert.NotEqual(t, "changed", stored.Category)
	})

	t.Run("Assign", func(t *testing.T) {
		complaint, err := repo.Assign(3, "Sneha Reddy", models.UrgencyHigh)
		require.NoError(t, err)
		assert.Equal(t, "Sneha Reddy", complaint.AssignedTo)
		assert.Equal(t, models.UrgencyHigh, complaint.Urgency)

		_, err = repo.Assign(404, "Sneha Reddy", models.UrgencyHigh)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Tracked lookup is exact", func(t *testing.T) {
		tracked, err := repo.GetTracked("123456")
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintStatusInProgress, tracked.Status)
		assert.Equal(t, "849302", tracked.OTP)

		_, err = repo.GetTracked(" 123456")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.GetTracked("000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Complete assignment", func(t *testing.T) {
		now := time.Now()
		assignment, err := repo.CompleteAssignment(1, now)
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintStatusCompleted, assignment.Status)
		require.NotNil(t, assignment.CompletedAt)
		assert.True(t, now.Equal(*assignment.CompletedAt))
	})
}

func TestStaffRepository(t *testing.T) {
	db := NewMemoryDB()
	repo := NewStaffRepository(db)

	member := &models.Staff{Name: "Kiran Rao", EmpID: "EMP006", Department: "IT", Role: models.StaffRoleStaff}
	require.NoError(t, repo.Create(member))
	assert.Equal(t, 6, member.ID)

	found, err := repo.GetByEmpID("EMP006")
	require.NoError(t, err)
	assert.Equal(t, "Kiran Rao", found.Name)

	department := &models.Department{Name: "Security"}
	require.NoError(t, repo.CreateDepartment(department))
	assert.Equal(t, 7, department.ID)

	marks, err := repo.Attendance("2024-11-04")
	require.NoError(t, err)
	assert.Nil(t, marks)

	require.NoError(t, repo.SaveAttendance("2024-11-04", []models.AttendanceMark{
		{StaffID: 1, Date: "2024-11-04", Present: true},
		{StaffID: 2, Date: "2024-11-04", Present: false},
	}))
	marks, err = repo.Attendance("2024-11-04")
	require.NoError(t, err)
	assert.Len(t, marks, 2)
}

func TestLocationRepository(t *testing.T) {
	db := NewMemoryDB()
	repo := NewLocationRepository(db)

	room, err := repo.MarkRoomQRGenerated(4)
	require.NoError(t, err)
	assert.True(t, room.QRGenerated)
	assert.Equal(t, "room-310", room.QRValue())

	area, err := repo.MarkAreaQRGenerated(3)
	require.NoError(t, err)
	assert.Equal(t, "area-Gym", area.QRValue())

	_, err = repo.GetRoom(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaveRequestRepository(t *testing.T) {
	db := NewMemoryDB()
	repo := NewLeaveRequestRepository(db)

	mine, err := repo.ListByEmpID("EMP001")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	request, err := repo.UpdateStatus(1, models.LeaveStatusApproved, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, request.Status)
	assert.NotNil(t, request.DecidedAt)
}

func TestMaterialRequestRepository(t *testing.T) {
	db := NewMemoryDB()
	repo := NewMaterialRequestRepository(db)

	request, err := repo.GetByPermissionID("PRM12345")
	require.NoError(t, err)
	assert.Equal(t, 2, request.ID)

	_, err = repo.GetByPermissionID("")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByPermissionID("prm12345")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Update(&models.MaterialRequest{ID: 42}), ErrNotFound)
}

func TestMemoryDBConcurrentAccess(t *testing.T) {
	db := NewMemoryDB()
	repo := NewComplaintRepository(db)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(&models.Complaint{RoomNo: "101"})
			_, _ = repo.List()
		}()
	}
	wg.Wait()

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 25)
}
