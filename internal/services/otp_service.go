package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// OTPLength is the length of the completion OTP
	OTPLength = 6

	// PermissionIDPrefix starts every store permission ID
	PermissionIDPrefix = "PRM"
)

// OTPService generates the short codes shown to guests and store staff.
// The codes are display values; only permission IDs are ever looked up.
type OTPService struct{}

// NewOTPService creates a new OTP service
func NewOTPService() *OTPService {
	return &OTPService{}
}

// GenerateOTP returns a 6 digit code in [100000, 999999]
func (s *OTPService) GenerateOTP() (string, error) {
	n, err := randomInRange(100000, 999999)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", n), nil
}

// GeneratePermissionID returns PRM followed by 5 digits in [10000, 99999]
func (s *OTPService) GeneratePermissionID() (string, error) {
	n, err := randomInRange(10000, 99999)
	if err != nil {
		return "", fmt.Errorf("failed to generate permission ID: %w", err)
	}
	return fmt.Sprintf("%s%d", PermissionIDPrefix, n), nil
}

// GenerateReference returns the 6 digit reference given for area complaints
func (s *OTPService) GenerateReference() (string, error) {
	n, err := randomInRange(100000, 999999)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference: %w", err)
	}
	return fmt.Sprintf("%d", n), nil
}

// randomInRange returns a uniformly random integer in [min, max]
func randomInRange(min, max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}
	return min + n.Int64(), nil
}
