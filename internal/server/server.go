package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/config"
	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/handlers"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
	"github.com/Adarshkumar111/Maintenance/internal/middleware"
	"github.com/Adarshkumar111/Maintenance/internal/services"
	"github.com/Adarshkumar111/Maintenance/internal/templates"
	"github.com/Adarshkumar111/Maintenance/pkg/jwt"
	"github.com/Adarshkumar111/Maintenance/pkg/validator"
)

// Version is reported by the health check
var Version = "1.0.0"

// maxUploadMemory caps the in-memory part of complaint and completion photo uploads
const maxUploadMemory = 8 << 20

// NewRateLimitService builds the complaint rate limiter from configuration
func NewRateLimitService(cfg *config.Config) *services.RateLimitService {
	return services.NewRateLimitService(services.RateLimitConfig{
		MaxIPRequests: cfg.RateLimit.Requests,
		IPWindow:      time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	})
}

// NewRouter builds the services, handlers and routes on top of db
func NewRouter(
	cfg *config.Config,
	db *database.MemoryDB,
	rateLimitService *services.RateLimitService,
	m *metrics.Metrics,
	logger *logrus.Logger,
) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	if err := validator.RegisterGinBindings(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	// Repositories
	complaintRepository := database.NewComplaintRepository(db)
	staffRepository := database.NewStaffRepository(db)
	locationRepository := database.NewLocationRepository(db)
	leaveRepository := database.NewLeaveRequestRepository(db)
	materialRepository := database.NewMaterialRequestRepository(db)

	// Services
	jwtService := jwt.NewService(cfg.Session.Secret, cfg.Session.Expiry)
	otpService := services.NewOTPService()
	authService := services.NewAuthService(jwtService, m, logger)
	auditService := services.NewAuditService(logger)
	complaintService := services.NewComplaintService(
		complaintRepository,
		staffRepository,
		otpService,
		time.Duration(cfg.Complaint.ResolutionHours)*time.Hour,
		m,
		logger,
	)
	materialService := services.NewMaterialService(materialRepository, otpService, m, logger)
	leaveService := services.NewLeaveService(leaveRepository, m, logger)
	staffService := services.NewStaffService(staffRepository, logger)
	dashboardService := services.NewDashboardService()
	qrService := services.NewQRService(locationRepository, cfg.QR.ImageSize, logger)
	exportService := services.NewExportService()

	// Handlers
	landingHandler := handlers.NewLandingHandler(dashboardService)
	authHandler := handlers.NewAuthHandler(authService, auditService, cfg.Session.Expiry, cfg.IsProduction(), logger)
	complaintHandler := handlers.NewComplaintHandler(complaintService, rateLimitService, auditService, logger)
	adminHandler := handlers.NewAdminHandler(dashboardService, complaintService, staffService, qrService, exportService, logger)
	staffHandler := handlers.NewStaffHandler(dashboardService, complaintService, leaveService, materialService, logger)
	supervisorHandler := handlers.NewSupervisorHandler(dashboardService, complaintService, staffService, leaveService, materialService, auditService, logger)
	storeHandler := handlers.NewStoreSupervisorHandler(dashboardService, materialService, auditService, logger)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = maxUploadMemory

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(m))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Session(jwtService, logger))

	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.GET("/", landingHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	complaint := router.Group("/complaint")
	{
		complaint.GET("/room", complaintHandler.DefaultRoom)
		complaint.GET("/room/:roomId", complaintHandler.ShowRoomForm)
		complaint.POST("/room/:roomId", complaintHandler.SubmitRoomComplaint)
		complaint.GET("/area", complaintHandler.DefaultArea)
		complaint.GET("/area/:areaId", complaintHandler.ShowAreaForm)
		complaint.POST("/area/:areaId", complaintHandler.SubmitAreaComplaint)
		complaint.GET("/status", complaintHandler.TrackComplaint)
	}

	admin := router.Group("/admin")
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/qr/rooms/:id/qr.png", adminHandler.RoomQRCode)
		admin.POST("/qr/rooms/:id/generate", adminHandler.GenerateRoomQR)
		admin.GET("/qr/areas/:id/qr.png", adminHandler.AreaQRCode)
		admin.POST("/qr/areas/:id/generate", adminHandler.GenerateAreaQR)
		admin.POST("/departments", adminHandler.AddDepartment)
		admin.POST("/staff", adminHandler.AddStaff)
		admin.GET("/complaints/export.xlsx", adminHandler.ExportComplaints)
	}

	staff := router.Group("/staff")
	{
		staff.GET("", staffHandler.Dashboard)
		staff.POST("/assignments/:id/complete", staffHandler.CompleteAssignment)
		staff.POST("/assignments/:id/materials", staffHandler.RequestMaterial)
		staff.POST("/leave", staffHandler.RequestLeave)
	}

	supervisor := router.Group("/supervisor")
	{
		supervisor.GET("", supervisorHandler.Dashboard)
		supervisor.POST("/complaints/:id/assign", supervisorHandler.AssignComplaint)
		supervisor.POST("/attendance", supervisorHandler.MarkAttendance)
		supervisor.POST("/leave/:id/approve", supervisorHandler.ApproveLeave)
		supervisor.POST("/leave/:id/reject", supervisorHandler.RejectLeave)
	}

	store := router.Group("/store-supervisor")
	{
		store.GET("", storeHandler.Dashboard)
		store.POST("/requests/:id/available", storeHandler.MarkAvailable)
		store.POST("/permissions/verify", storeHandler.VerifyPermission)
	}

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":     "Not Found",
			"Heading":   "Page not found",
			"Message":   "The page you are looking for does not exist.",
			"RequestID": middleware.GetRequestID(c),
		})
	})

	return router, nil
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   Version,
			"timestamp": time.Now().Unix(),
		})
	}
}
