package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

func newTestLeaveService(db *database.MemoryDB) *LeaveService {
	svc := NewLeaveService(database.NewLeaveRequestRepository(db), metrics.New(), newTestLogger())
	svc.now = func() time.Time { return testClock }
	return svc
}

func TestRequestLeave(t *testing.T) {
	svc := newTestLeaveService(database.NewMemoryDB())

	request, err := svc.RequestLeave(models.LeaveInput{
		StaffName: "Rahul Kumar",
		EmpID:     "EMP001",
		FromDate:  "2024-12-01",
		ToDate:    "2024-12-01",
		Reason:    "Family function",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, request.Status)

	history, err := svc.ListForEmployee("EMP001")
	require.NoError(t, err)
	assert.Len(t, history, 4)

	tests := []struct {
		name  string
		input models.LeaveInput
		err   error
	}{
		{"Reversed dates", models.LeaveInput{FromDate: "2024-12-05", ToDate: "2024-12-01", Reason: "x"}, ErrInvalidLeaveDates},
		{"Bad date", models.LeaveInput{FromDate: "05/12/2024", ToDate: "2024-12-06", Reason: "x"}, ErrInvalidLeaveDates},
		{"No reason", models.LeaveInput{FromDate: "2024-12-05", ToDate: "2024-12-06", Reason: " "}, ErrMissingLeaveReason},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RequestLeave(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecideLeave(t *testing.T) {
	svc := newTestLeaveService(database.NewMemoryDB())

	pending, err := svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	request, err := svc.Approve(1)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, request.Status)
	require.NotNil(t, request.DecidedAt)

	_, err = svc.Reject(1)
	assert.ErrorIs(t, err, ErrLeaveAlreadyDecided)

	_, err = svc.Approve(99)
	assert.ErrorIs(t, err, ErrLeaveNotFound)

	pending, err = svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}
