package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adarshkumar111/Maintenance/internal/config"
	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
	"github.com/Adarshkumar111/Maintenance/internal/middleware"
)

var (
	otpPattern        = regexp.MustCompile(`id="otp">(\d{6})<`)
	permissionPattern = regexp.MustCompile(`Permission ID: (PRM\d{5})`)
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "8080", Environment: "test", LogLevel: "error"},
		Session:   config.SessionConfig{Secret: "test-secret", Expiry: time.Hour},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}, AllowedMethods: []string{"GET", "POST"}, AllowedHeaders: []string{"Content-Type"}},
		Complaint: config.ComplaintConfig{ResolutionHours: 24},
		QR:        config.QRConfig{ImageSize: 128},
		RateLimit: config.RateLimitConfig{Requests: 2, WindowSeconds: 3600},
	}
}

// setupTestRouter wires the full application against fresh demo data
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := test.NewNullLogger()
	cfg := newTestConfig()
	router, err := NewRouter(cfg, database.NewMemoryDB(), NewRateLimitService(cfg), metrics.New(), logger)
	require.NoError(t, err)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func postMultipart(t *testing.T, router *gin.Engine, path string, fields map[string]string, withPhoto bool) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withPhoto {
		part, err := writer.CreateFormFile("photo", "work.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "admin goes to admin dashboard",
			form:         url.Values{"user_id": {"admin"}, "password": {"x"}, "role": {"Admin"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin",
		},
		{
			name:         "store supervisor",
			form:         url.Values{"user_id": {"store"}, "password": {"x"}, "role": {"Store Supervisor"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/store-supervisor",
		},
		{
			name:       "empty role",
			form:       url.Values{"user_id": {"admin"}, "password": {"x"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Please select a valid role",
		},
		{
			name:       "unknown role",
			form:       url.Values{"user_id": {"admin"}, "password": {"x"}, "role": {"Manager"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Please select a valid role",
		},
		{
			name:       "missing password",
			form:       url.Values{"user_id": {"admin"}, "role": {"Admin"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "User ID and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(t)
			w := postForm(router, "/login", tt.form)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
				assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookieName+"=")
			}
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestLogin_SessionShownOnDashboard(t *testing.T) {
	router := setupTestRouter(t)
	login := postForm(router, "/login", url.Values{"user_id": {"vikram"}, "password": {"x"}, "role": {"Supervisor"}})
	require.Equal(t, http.StatusSeeOther, login.Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/supervisor", nil)
	for _, cookie := range login.Result().Cookies() {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Signed in as vikram (Supervisor)")
}

func TestTrackComplaint(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("in progress complaint shows OTP", func(t *testing.T) {
		w := get(router, "/complaint/status?id=123456")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-status="in-progress"`)
		assert.Contains(t, w.Body.String(), "849302")
		assert.Contains(t, w.Body.String(), "Rajesh Kumar")
	})

	t.Run("completed area complaint", func(t *testing.T) {
		w := get(router, "/complaint/status?id=789012")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-status="completed"`)
		assert.NotContains(t, w.Body.String(), `id="otp"`)
	})

	t.Run("unknown ID", func(t *testing.T) {
		w := get(router, "/complaint/status?id=000000")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Complaint ID not found!")
	})

	t.Run("no ID shows the search form", func(t *testing.T) {
		w := get(router, "/complaint/status")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Complaint ID not found!")
	})
}

func TestRoomComplaint(t *testing.T) {
	t.Run("submit shows a fresh OTP", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/complaint/room/205", url.Values{
			"its_no":      {"ITS55555"},
			"category":    {"Electrical"},
			"description": {"Switch sparking"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		match := otpPattern.FindStringSubmatch(w.Body.String())
		require.Len(t, match, 2)
		assert.GreaterOrEqual(t, match[1], "100000")
		assert.Contains(t, w.Body.String(), "resolved within 24 hours")

		admin := get(router, "/admin?tab=complaints")
		assert.Contains(t, admin.Body.String(), "Switch sparking")
	})

	t.Run("missing fields", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/complaint/room/101", url.Values{"its_no": {"ITS1"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ITS number, category and description are required")
	})

	t.Run("category only offered for areas", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/complaint/room/101", url.Values{
			"its_no":      {"ITS1"},
			"category":    {"Furniture"},
			"description": {"Chair broken"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rate limited per client", func(t *testing.T) {
		router := setupTestRouter(t)
		form := url.Values{"its_no": {"ITS1"}, "category": {"Plumbing"}, "description": {"Leak"}}
		assert.Equal(t, http.StatusOK, postForm(router, "/complaint/room/101", form).Code)
		assert.Equal(t, http.StatusOK, postForm(router, "/complaint/room/101", form).Code)

		w := postForm(router, "/complaint/room/101", form)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many complaints")
	})

	t.Run("default room redirect", func(t *testing.T) {
		router := setupTestRouter(t)
		w := get(router, "/complaint/room")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/complaint/room/101", w.Header().Get("Location"))
	})
}

func TestAreaComplaint(t *testing.T) {
	router := setupTestRouter(t)

	w := postMultipart(t, router, "/complaint/area/Gym", map[string]string{
		"its_no":      "ITS777",
		"category":    "AC/Heating",
		"description": "AC not cooling",
	}, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `id="reference">#\d{6}<`, w.Body.String())
	assert.NotContains(t, w.Body.String(), `id="otp"`)
}

func TestStoreSupervisor(t *testing.T) {
	t.Run("mark available then verify", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postForm(router, "/store-supervisor/requests/1/available", url.Values{})
		require.Equal(t, http.StatusOK, w.Code)
		match := permissionPattern.FindStringSubmatch(w.Body.String())
		require.Len(t, match, 2)
		assert.Contains(t, w.Body.String(), `<tr id="material-1">`)
		assert.Regexp(t, `(?s)id="material-1">.*?data-status="available"`, w.Body.String())

		verify := postForm(router, "/store-supervisor/permissions/verify", url.Values{"permission_id": {match[1]}})
		assert.Equal(t, http.StatusOK, verify.Code)
		assert.Contains(t, verify.Body.String(), "Material collected successfully!")
	})

	t.Run("out of stock cannot be marked available", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/store-supervisor/requests/3/available", url.Values{})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/store-supervisor/requests/99/available", url.Values{})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid permission IDs", func(t *testing.T) {
		router := setupTestRouter(t)
		for _, id := range []string{"prm12345", "PRM99999", ""} {
			w := postForm(router, "/store-supervisor/permissions/verify", url.Values{"permission_id": {id}})
			assert.Equal(t, http.StatusBadRequest, w.Code, id)
			assert.Contains(t, w.Body.String(), "Invalid Permission ID", id)
		}
	})

	t.Run("search", func(t *testing.T) {
		router := setupTestRouter(t)
		w := get(router, "/store-supervisor?q=plumb")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Pipe Fitting")
		assert.NotContains(t, w.Body.String(), "LED Bulb")
	})
}

func TestStaffDashboard(t *testing.T) {
	t.Run("complete work", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postMultipart(t, router, "/staff/assignments/1/complete", map[string]string{"otp": "482913"}, true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Work for Room 101 marked as completed")

		again := postMultipart(t, router, "/staff/assignments/1/complete", map[string]string{"otp": "482913"}, true)
		assert.Equal(t, http.StatusConflict, again.Code)
	})

	t.Run("complete work needs photo", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postMultipart(t, router, "/staff/assignments/1/complete", map[string]string{"otp": "482913"}, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please upload a photo")
	})

	t.Run("complete work needs 6-digit OTP", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postMultipart(t, router, "/staff/assignments/1/complete", map[string]string{"otp": "12ab"}, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a valid 6-digit OTP")
	})

	t.Run("request leave", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/staff/leave", url.Values{
			"from_date": {"2024-12-01"},
			"to_date":   {"2024-12-03"},
			"reason":    {"Family function"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Family function")

		bad := postForm(router, "/staff/leave", url.Values{
			"from_date": {"2024-12-03"},
			"to_date":   {"2024-12-01"},
			"reason":    {"Oops"},
		})
		assert.Equal(t, http.StatusBadRequest, bad.Code)
	})

	t.Run("request material", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/staff/assignments/2/materials", url.Values{
			"item_name": {"Tube Light"},
			"quantity":  {"2"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Requested 2 x Tube Light from the store")

		store := get(router, "/store-supervisor")
		assert.Contains(t, store.Body.String(), "Tube Light")
	})
}

func TestSupervisorDashboard(t *testing.T) {
	t.Run("assign complaint", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/supervisor/complaints/4/assign", url.Values{
			"staff_name": {"Rahul Kumar"},
			"urgency":    {"high"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Complaint #4 assigned to Rahul Kumar")
	})

	t.Run("assign to unknown staff", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/supervisor/complaints/4/assign", url.Values{
			"staff_name": {"Nobody"},
			"urgency":    {"high"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("approve leave once", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/supervisor/leave/1/approve", url.Values{})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Leave request from Rahul Kumar approved")

		again := postForm(router, "/supervisor/leave/1/reject", url.Values{})
		assert.Equal(t, http.StatusConflict, again.Code)
	})

	t.Run("mark attendance", func(t *testing.T) {
		router := setupTestRouter(t)
		w := postForm(router, "/supervisor/attendance", url.Values{
			"date":    {"2024-11-03"},
			"present": {"1", "3"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2 of 5 present")
	})
}

func TestAdminDashboard(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("room QR image", func(t *testing.T) {
		w := get(router, "/admin/qr/rooms/1/qr.png")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("unknown area QR", func(t *testing.T) {
		w := get(router, "/admin/qr/areas/99/qr.png")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("generate room QR", func(t *testing.T) {
		w := postForm(router, "/admin/qr/rooms/4/generate", url.Values{})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "QR code generated for Room 310")
		assert.Contains(t, w.Body.String(), `src="/admin/qr/rooms/4/qr.png"`)
	})

	t.Run("add department", func(t *testing.T) {
		w := postForm(router, "/admin/departments", url.Values{"name": {"Security"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Department Security added")

		dup := postForm(router, "/admin/departments", url.Values{"name": {"security"}})
		assert.Equal(t, http.StatusConflict, dup.Code)
	})

	t.Run("add staff", func(t *testing.T) {
		w := postForm(router, "/admin/staff", url.Values{
			"name":       {"Kiran Rao"},
			"emp_id":     {"EMP010"},
			"department": {"Plumbing"},
			"role":       {"Staff"},
			"join_date":  {"2024-11-01"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Kiran Rao (EMP010) added to Plumbing")
	})

	t.Run("export complaints", func(t *testing.T) {
		w := get(router, "/admin/complaints/export.xlsx")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "complaints.xlsx")
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
	})
}

func TestPages(t *testing.T) {
	router := setupTestRouter(t)

	paths := []string{
		"/",
		"/login",
		"/complaint/room/101",
		"/complaint/area/Lobby",
		"/admin", "/admin?tab=qr", "/admin?tab=departments", "/admin?tab=staff", "/admin?tab=complaints",
		"/staff", "/staff?tab=leave", "/staff?tab=profile",
		"/supervisor", "/supervisor?tab=staff", "/supervisor?tab=leave", "/supervisor?tab=materials",
		"/supervisor?tab=analytics", "/supervisor?tab=profile",
		"/store-supervisor", "/store-supervisor?tab=profile",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := get(router, path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		})
	}

	t.Run("landing links", func(t *testing.T) {
		w := get(router, "/")
		assert.Contains(t, w.Body.String(), `href="/complaint/room/101"`)
		assert.Contains(t, w.Body.String(), `href="/complaint/area/Lobby"`)
	})

	t.Run("unknown path", func(t *testing.T) {
		w := get(router, "/nowhere")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupTestRouter(t)

	health := get(router, "/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"status":"healthy"`)

	get(router, "/login")
	m := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), "maintenance_http_requests_total")
}

func TestHealth_ClosedDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	db := database.NewMemoryDB()
	cfg := newTestConfig()
	router, err := NewRouter(cfg, db, NewRateLimitService(cfg), metrics.New(), logger)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	w := get(router, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
