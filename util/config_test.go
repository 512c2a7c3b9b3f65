package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKLVMaxIterations(t *testing.T) {
	// Mock
	os.Unsetenv(GIMI_KLV_MAX_ITERATIONS)
	unset := GetKLVMaxIterations()
	os.Setenv(GIMI_KLV_MAX_ITERATIONS, "250")
	valid := GetKLVMaxIterations()
	os.Setenv(GIMI_KLV_MAX_ITERATIONS, "not-a-number")
	invalid := GetKLVMaxIterations()
	os.Unsetenv(GIMI_KLV_MAX_ITERATIONS)

	// Asserts
	assert.Equal(t, 0, unset)
	assert.Equal(t, 250, valid)
	assert.Equal(t, 0, invalid)
}

func TestUseUnsignedAngles(t *testing.T) {
	// Mock
	os.Setenv(GIMI_KLV_UNSIGNED_ANGLES, "true")
	enabled, enabledErr := UseUnsignedAngles()
	os.Unsetenv(GIMI_KLV_UNSIGNED_ANGLES)
	disabled, _ := UseUnsignedAngles()

	// Asserts
	assert.Nil(t, enabledErr)
	assert.True(t, enabled)
	assert.False(t, disabled)
}
