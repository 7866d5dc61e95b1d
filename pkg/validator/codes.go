package validator

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyCode indicates the code field was left blank
	ErrEmptyCode = errors.New("code cannot be empty")

	// ErrInvalidOTP indicates the OTP is not exactly 6 digits
	ErrInvalidOTP = errors.New("OTP must be exactly 6 digits")

	// ErrInvalidPermissionID indicates the permission ID is not PRM followed by 5 digits
	ErrInvalidPermissionID = errors.New("permission ID must be PRM followed by 5 digits")
)

var (
	otpRegex          = regexp.MustCompile(`^\d{6}$`)
	permissionIDRegex = regexp.MustCompile(`^PRM\d{5}$`)
)

// Binding tags registered with gin's validator
const (
	OTPTag          = "otp"
	PermissionIDTag = "permission_id"
)

// CodeValidator checks the short codes handed out by the portal
type CodeValidator struct{}

// NewCodeValidator creates a new code validator instance
func NewCodeValidator() *CodeValidator {
	return &CodeValidator{}
}

// ValidateOTP checks a completion OTP. Input is not trimmed or normalised.
func (v *CodeValidator) ValidateOTP(otp string) error {
	if otp == "" {
		return ErrEmptyCode
	}
	if !otpRegex.MatchString(otp) {
		return ErrInvalidOTP
	}
	return nil
}

// ValidatePermissionID checks a store permission ID. Matching is case sensitive.
func (v *CodeValidator) ValidatePermissionID(permissionID string) error {
	if permissionID == "" {
		return ErrEmptyCode
	}
	if !permissionIDRegex.MatchString(permissionID) {
		return ErrInvalidPermissionID
	}
	return nil
}

// IsOTP reports whether s is a 6 digit OTP
func IsOTP(s string) bool {
	return otpRegex.MatchString(s)
}

// IsPermissionID reports whether s looks like PRM12345
func IsPermissionID(s string) bool {
	return permissionIDRegex.MatchString(s)
}

// RegisterGinBindings adds the otp and permission_id tags to gin's
// default validator so form structs can use them in binding tags
func RegisterGinBindings() error {
	engine, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	if err := engine.RegisterValidation(OTPTag, func(fl playground.FieldLevel) bool {
		return IsOTP(fl.Field().String())
	}); err != nil {
		return err
	}

	return engine.RegisterValidation(PermissionIDTag, func(fl playground.FieldLevel) bool {
		return IsPermissionID(fl.Field().String())
	})
}
