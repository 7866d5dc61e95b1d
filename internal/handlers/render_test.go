package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Adarshkumar111/Maintenance/internal/services"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.ErrComplaintNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrMaterialNotFound), http.StatusNotFound},
		{"conflict", services.ErrMaterialNotAvailable, http.StatusConflict},
		{"validation", services.ErrInvalidPermissionID, http.StatusBadRequest},
		{"role", services.ErrUnknownRole, http.StatusBadRequest},
		{"rate limit", &services.RateLimitError{Message: "slow down", RetryAfter: time.Now()}, http.StatusTooManyRequests},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestAlertMessage(t *testing.T) {
	assert.Equal(t, "Please select a valid role", alertMessage(services.ErrUnknownRole))
	assert.Equal(t, "Invalid Permission ID", alertMessage(services.ErrInvalidPermissionID))
	assert.Equal(t, "Something went wrong. Please try again.", alertMessage(errors.New("disk on fire")))
}

func TestActiveTab(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  string
	}{
		{"", "overview"},
		{"?tab=staff", "staff"},
		{"?tab=bogus", "overview"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/admin"+tt.query, nil)
			assert.Equal(t, tt.want, activeTab(c, adminTabs))
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		value  string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{"0", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}
			id, ok := pathID(c, "id")
			assert.Equal(t, tt.want, id)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
