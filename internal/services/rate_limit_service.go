package services

import (
	"fmt"
	"sync"
	"time"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	MaxIPRequests int           // Max complaint submissions per IP, 0 disables the limit
	IPWindow      time.Duration // Time window for the IP limit
}

// RateLimitError represents a rate limit exceeded error
type RateLimitError struct {
	Message    string
	RetryAfter time.Time
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// RateLimitService limits how often one client can file guest complaints.
// Request times are kept in memory per IP.
type RateLimitService struct {
	mu       sync.Mutex
	config   RateLimitConfig
	requests map[string][]time.Time
	now      func() time.Time
}

// NewRateLimitService creates a new rate limit service
func NewRateLimitService(config RateLimitConfig) *RateLimitService {
	return &RateLimitService{
		config:   config,
		requests: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// CheckComplaintRateLimit returns a *RateLimitError if ip has used up its window
func (s *RateLimitService) CheckComplaintRateLimit(ip string) error {
	if ip == "" || s.config.MaxIPRequests <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.prune(ip)
	if len(recent) >= s.config.MaxIPRequests {
		retryAfter := recent[0].Add(s.config.IPWindow)
		return &RateLimitError{
			Message:    fmt.Sprintf("Too many complaints from this device. Please try again after %s", retryAfter.Format("15:04")),
			RetryAfter: retryAfter,
		}
	}
	return nil
}

// RecordComplaint records a submission from ip
func (s *RateLimitService) RecordComplaint(ip string) {
	if ip == "" || s.config.MaxIPRequests <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[ip] = append(s.prune(ip), s.now())
}

// CleanupExpired drops identifiers with no requests inside the window.
// Returns how many were removed.
func (s *RateLimitService) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for ip := range s.requests {
		if len(s.prune(ip)) == 0 {
			delete(s.requests, ip)
			removed++
		}
	}
	return removed
}

// prune drops requests older than the window. Callers hold s.mu.
func (s *RateLimitService) prune(ip string) []time.Time {
	cutoff := s.now().Add(-s.config.IPWindow)
	times := s.requests[ip]
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	times = times[i:]
	s.requests[ip] = times
	return times
}
