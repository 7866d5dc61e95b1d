package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeRemaining(t *testing.T) {
	now := time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"Hours and minutes", now.Add(4*time.Hour + 30*time.Minute), "4h 30m"},
		{"Seconds dropped", now.Add(59*time.Second + 2*time.Minute), "0h 2m"},
		{"Exactly now", now, "0h 0m"},
		{"Thirty minutes overdue", now.Add(-30 * time.Minute), "-1h -30m"},
		{"Two hours overdue", now.Add(-2 * time.Hour), "-2h 0m"},
		{"Partial minute overdue", now.Add(-30*time.Minute - 30*time.Second), "-1h -31m"},
		{"Days ahead", now.Add(50 * time.Hour), "50h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeRemaining(tt.deadline, now))
		})
	}
}

func TestParseUserAgent(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		info := ParseUserAgent("")
		assert.Equal(t, "unknown", info.DeviceType)
	})

	t.Run("Android phone", func(t *testing.T) {
		info := ParseUserAgent("Mozilla/5.0 (Linux; Android 12; Pixel 6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Mobile Safari/537.36")
		assert.Equal(t, "mobile", info.DeviceType)
		assert.Contains(t, info.Browser, "Chrome")
		assert.False(t, info.IsBot)
	})

	t.Run("Desktop", func(t *testing.T) {
		info := ParseUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36")
		assert.Equal(t, "desktop", info.DeviceType)
	})

	t.Run("Bot", func(t *testing.T) {
		info := ParseUserAgent("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		assert.True(t, info.IsBot)
	})
}

func TestGetRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.7"}, "203.0.113.7"},
		{"Forwarded chain", map[string]string{"X-Forwarded-For": "bogus, 198.51.100.2, 10.0.0.1"}, "198.51.100.2"},
		{"Fallback", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c.Request = req
			assert.Equal(t, tt.want, GetRealIP(c))
		})
	}
}

func TestGenerateSessionSecret(t *testing.T) {
	a, err := GenerateSessionSecret()
	require.NoError(t, err)
	b, err := GenerateSessionSecret()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
