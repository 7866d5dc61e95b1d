package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitTest(max int) (*RateLimitService, *time.Time) {
	clock := testClock
	service := NewRateLimitService(RateLimitConfig{MaxIPRequests: max, IPWindow: time.Hour})
	service.now = func() time.Time { return clock }
	return service, &clock
}

func TestCheckComplaintRateLimit_NoRequests(t *testing.T) {
	service, _ := setupRateLimitTest(2)
	assert.NoError(t, service.CheckComplaintRateLimit("192.168.1.1"))
}

func TestCheckComplaintRateLimit_Exceeded(t *testing.T) {
	service, clock := setupRateLimitTest(2)
	ip := "192.168.1.1"

	service.RecordComplaint(ip)
	*clock = clock.Add(10 * time.Minute)
	service.RecordComplaint(ip)

	err := service.CheckComplaintRateLimit(ip)
	require.Error(t, err)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, testClock.Add(time.Hour), rateErr.RetryAfter)

	// other clients are unaffected
	assert.NoError(t, service.CheckComplaintRateLimit("192.168.1.2"))
}

func TestCheckComplaintRateLimit_WindowSlides(t *testing.T) {
	service, clock := setupRateLimitTest(1)
	ip := "192.168.1.1"

	service.RecordComplaint(ip)
	assert.Error(t, service.CheckComplaintRateLimit(ip))

	*clock = clock.Add(time.Hour + time.Second)
	assert.NoError(t, service.CheckComplaintRateLimit(ip))
}

func TestCheckComplaintRateLimit_Disabled(t *testing.T) {
	service, _ := setupRateLimitTest(0)
	for i := 0; i < 5; i++ {
		service.RecordComplaint("192.168.1.1")
	}
	assert.NoError(t, service.CheckComplaintRateLimit("192.168.1.1"))
}

func TestCleanupExpired(t *testing.T) {
	service, clock := setupRateLimitTest(5)
	service.RecordComplaint("192.168.1.1")
	service.RecordComplaint("192.168.1.2")

	assert.Equal(t, 0, service.CleanupExpired())

	*clock = clock.Add(2 * time.Hour)
	assert.Equal(t, 2, service.CleanupExpired())
}
