package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOTPService(t *testing.T) {
	service := NewOTPService()
	assert.NotNil(t, service)
}

func TestGenerateOTP(t *testing.T) {
	service := NewOTPService()

	for i := 0; i < 200; i++ {
		otp, err := service.GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, otp)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateOTP_Uniqueness(t *testing.T) {
	service := NewOTPService()
	otps := make(map[string]bool)

	for i := 0; i < 100; i++ {
		otp, err := service.GenerateOTP()
		require.NoError(t, err)
		otps[otp] = true
	}

	// Should generate different OTPs (at least 80% unique)
	assert.Greater(t, len(otps), 80)
}

func TestGeneratePermissionID(t *testing.T) {
	service := NewOTPService()

	for i := 0; i < 200; i++ {
		id, err := service.GeneratePermissionID()
		require.NoError(t, err)
		assert.Regexp(t, `^PRM\d{5}$`, id)

		n, err := strconv.Atoi(id[3:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
	}
}

func TestGenerateReference(t *testing.T) {
	service := NewOTPService()

	ref, err := service.GenerateReference()
	require.NoError(t, err)
	assert.Regexp(t, `^[1-9]\d{5}$`, ref)
}
