package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeValidator(t *testing.T) {
	validator := NewCodeValidator()
	assert.NotNil(t, validator)
}

func TestValidateOTP(t *testing.T) {
	validator := NewCodeValidator()

	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"Valid", "849302", nil},
		{"Leading zero", "012345", nil},
		{"Empty", "", ErrEmptyCode},
		{"Too short", "12345", ErrInvalidOTP},
		{"Too long", "1234567", ErrInvalidOTP},
		{"Letters", "12a456", ErrInvalidOTP},
		{"Padded", " 123456", ErrInvalidOTP},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateOTP(tc.input)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestValidatePermissionID(t *testing.T) {
	validator := NewCodeValidator()

	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"Valid", "PRM12345", nil},
		{"Empty", "", ErrEmptyCode},
		{"Lowercase prefix", "prm12345", ErrInvalidPermissionID},
		{"Four digits", "PRM1234", ErrInvalidPermissionID},
		{"Wrong prefix", "PRX12345", ErrInvalidPermissionID},
		{"Trailing space", "PRM12345 ", ErrInvalidPermissionID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidatePermissionID(tc.input)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestRegisterGinBindings(t *testing.T) {
	require.NoError(t, RegisterGinBindings())

	type completeForm struct {
		OTP string `binding:"required,otp"`
	}
	type verifyForm struct {
		PermissionID string `binding:"required,permission_id"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&completeForm{OTP: "123456"}))
	assert.Error(t, binding.Validator.ValidateStruct(&completeForm{OTP: "12345"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&verifyForm{PermissionID: "PRM54321"}))
	assert.Error(t, binding.Validator.ValidateStruct(&verifyForm{PermissionID: "PRM5432"}))
}
