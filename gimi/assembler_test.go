package gimi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ricardogsilva/gimirrai/klv"
	"github.com/ricardogsilva/gimirrai/model"
)

// General test mocks and utils

func rectangleFields() klv.FieldMap {
	return klv.FieldMap{
		klv.FieldPt1WestBoundLongitude: -10.0,
		klv.FieldPt1NorthBoundLatitude: 50.0,
		klv.FieldPt3EastBoundLongitude: 10.0,
		klv.FieldPt3SouthBoundLatitude: 40.0,
	}
}

func TestAssembleImageMetadata_Resolutions(t *testing.T) {
	// Tested code
	image, err := AssembleImageMetadata(rectangleFields(), 1000, 800, nil)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, 0.02, image.XResolution)
	assert.Equal(t, -0.0125, image.YResolution)
	assert.Equal(t, model.GeoTransform{-10.0, 0.02, 0, 50.0, 0, -0.0125}, image.GeoTransform)
	assert.Equal(t, model.WGS84EPSGCode, image.CRS)
	assert.Equal(t, 1000, image.Width)
	assert.Equal(t, 800, image.Height)
}

func TestAssembleImageMetadata_AffineOrigin(t *testing.T) {
	// Tested code
	image, err := AssembleImageMetadata(rectangleFields(), 1000, 800, nil)

	// Asserts
	assert.Nil(t, err)
	x, y := image.GeoTransform.Apply(0, 0)
	assert.Equal(t, -10.0, x)
	assert.Equal(t, 50.0, y)
}

func TestAssembleImageMetadata_GroundControlPoints(t *testing.T) {
	// Tested code
	image, err := AssembleImageMetadata(rectangleFields(), 1000, 800, nil)

	// Asserts
	assert.Nil(t, err)
	assert.Len(t, image.GroundControlPoints, 4)
	topLeft := image.GroundControlPoints[0]
	assert.Equal(t, model.GroundControlPoint{ID: "1", Pixel: 0, Line: 0, X: -10.0, Y: 50.0}, topLeft)
	bottomRight := image.GroundControlPoints[2]
	assert.Equal(t, model.GroundControlPoint{ID: "3", Pixel: 1000, Line: 800, X: 10.0, Y: 40.0}, bottomRight)
}

func TestAssembleImageMetadata_BoundingBoxIsClosedRing(t *testing.T) {
	// Tested code
	image, err := AssembleImageMetadata(rectangleFields(), 1000, 800, nil)

	// Asserts
	assert.Nil(t, err)
	ring := image.BoundingBox.Coordinates[0]
	assert.Len(t, ring, 5)
	assert.Equal(t, []float64{-10.0, 50.0}, ring[0])
	assert.Equal(t, []float64{10.0, 40.0}, ring[2])
	assert.Equal(t, ring[0], ring[4])
}

func TestAssembleImageMetadata_MissingRequiredField(t *testing.T) {
	// Mock
	fields := rectangleFields()
	delete(fields, klv.FieldPt3SouthBoundLatitude)

	// Tested code
	_, err := AssembleImageMetadata(fields, 1000, 800, nil)

	// Asserts
	assert.NotNil(t, err)
	missing, ok := err.(MissingFieldError)
	assert.True(t, ok)
	assert.Equal(t, klv.FieldPt3SouthBoundLatitude, missing.Field)
}

func TestAssembleImageMetadata_InvalidDimensions(t *testing.T) {
	_, widthErr := AssembleImageMetadata(rectangleFields(), 0, 800, nil)
	_, heightErr := AssembleImageMetadata(rectangleFields(), 1000, -1, nil)

	assert.NotNil(t, widthErr)
	assert.NotNil(t, heightErr)
}

func TestAssembleImageMetadata_OptionalFields(t *testing.T) {
	// Mock
	instant := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	fields := rectangleFields()
	fields[klv.FieldTitle] = "MISSION01"
	fields[klv.FieldBeginPosition] = instant
	fields[klv.FieldPt2EastBoundLongitude] = 10.0
	fields[klv.FieldPt2NorthBoundLatitude] = 50.0

	// Tested code
	image, err := AssembleImageMetadata(fields, 1000, 800, nil)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "MISSION01", image.Title)
	assert.NotNil(t, image.BeginPosition)
	assert.Equal(t, instant, *image.BeginPosition)
	assert.NotNil(t, image.Corners.Pt1)
	assert.NotNil(t, image.Corners.Pt2)
	assert.Equal(t, model.Corner{Lon: 10.0, Lat: 50.0}, *image.Corners.Pt2)
	assert.Nil(t, image.Corners.Pt4)
}

func TestAssembleImageMetadata_CarriesBands(t *testing.T) {
	// Mock
	noData := 0.0
	bands := map[int]model.BandDescriptor{
		1: {Index: 1, PixelType: "uint8", NoDataValue: &noData},
	}

	// Tested code
	image, err := AssembleImageMetadata(rectangleFields(), 1000, 800, bands)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, bands, image.Bands)
}
