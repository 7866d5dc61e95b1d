package services

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
)

// testClock is the fixed "now" used by service tests
var testClock = time.Date(2024, 11, 3, 12, 0, 0, 0, time.Local)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestComplaintService(db *database.MemoryDB) *ComplaintService {
	svc := NewComplaintService(
		database.NewComplaintRepository(db),
		database.NewStaffRepository(db),
		NewOTPService(),
		24*time.Hour,
		metrics.New(),
		newTestLogger(),
	)
	svc.now = func() time.Time { return testClock }
	return svc
}
