package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoTransform_Apply(t *testing.T) {
	// Mock
	gt := NewGeoTransform(-10.0, 0.02, 50.0, -0.0125)

	// Tested code
	originX, originY := gt.Apply(0, 0)
	cornerX, cornerY := gt.Apply(1000, 800)

	// Asserts
	assert.Equal(t, -10.0, originX)
	assert.Equal(t, 50.0, originY)
	assert.Equal(t, 10.0, cornerX)
	assert.Equal(t, 40.0, cornerY)
}

func TestGeoTransform_ZeroRotation(t *testing.T) {
	gt := NewGeoTransform(-10.0, 0.02, 50.0, -0.0125)
	assert.Equal(t, 0.0, gt[2])
	assert.Equal(t, 0.0, gt[4])
}

func TestGeoTransform_String(t *testing.T) {
	// Mock
	gt := NewGeoTransform(-10.0, 0.02, 50.0, -0.0125)

	// Tested code
	rendered := gt.String()

	// Asserts
	assert.Equal(t, "-10, 0.02, 0, 50, 0, -0.0125", rendered)
}
