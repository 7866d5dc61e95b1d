package services

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/metrics"
	"github.com/Adarshkumar111/Maintenance/internal/models"
	"github.com/Adarshkumar111/Maintenance/pkg/jwt"
)

var (
	// ErrUnknownRole indicates the login role is not one of the offered roles
	ErrUnknownRole = fmt.Errorf("please select a valid role")

	// ErrMissingCredentials indicates the user ID or password was blank
	ErrMissingCredentials = fmt.Errorf("user ID and password are required")
)

// LoginResult is where the browser goes after login, plus the session cookie value
type LoginResult struct {
	Role         models.Role
	RedirectPath string
	SessionToken string
}

// AuthService routes logins to role dashboards. Credentials are only checked
// for presence; the session token labels the dashboard and grants nothing.
type AuthService struct {
	jwtService *jwt.Service
	metrics    *metrics.Metrics
	logger     *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(jwtService *jwt.Service, m *metrics.Metrics, logger *logrus.Logger) *AuthService {
	return &AuthService{
		jwtService: jwtService,
		metrics:    m,
		logger:     logger,
	}
}

// ResolveRole returns the dashboard path for a role name
func (s *AuthService) ResolveRole(role string) (string, error) {
	path := models.Role(role).Path()
	if path == "" {
		return "", ErrUnknownRole
	}
	return path, nil
}

// Login validates the form and signs a session token for the chosen role
func (s *AuthService) Login(userID, password, role string) (*LoginResult, error) {
	if strings.TrimSpace(userID) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	path, err := s.ResolveRole(role)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateSessionToken(userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.metrics.Login(role)
	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"role":    role,
	}).Info("User logged in")

	return &LoginResult{
		Role:         models.Role(role),
		RedirectPath: path,
		SessionToken: token,
	}, nil
}

// Session parses a session cookie value
func (s *AuthService) Session(token string) (*jwt.Claims, error) {
	return s.jwtService.ValidateSessionToken(token)
}
