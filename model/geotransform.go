package model

import (
	"strconv"
	"strings"
)

// GeoTransform holds the six affine coefficients mapping pixel space to
// geographic space, in GDAL order: origin x, pixel width, row rotation,
// origin y, column rotation, pixel height. The rotation terms are
// always zero for GIMI imagery.
type GeoTransform [6]float64

// NewGeoTransform builds the zero-rotation transform for an image whose
// upper-left corner sits at (originX, originY) with the given
// degrees-per-pixel resolutions
func NewGeoTransform(originX, xResolution, originY, yResolution float64) GeoTransform {
	return GeoTransform{originX, xResolution, 0, originY, 0, yResolution}
}

// Apply maps a pixel column/row to its geographic coordinates
func (gt GeoTransform) Apply(column, row float64) (x, y float64) {
	x = gt[0] + column*gt[1] + row*gt[2]
	y = gt[3] + column*gt[4] + row*gt[5]
	return
}

// String renders the coefficients comma-separated in GDAL order, the
// form raster tooling expects inside a virtual raster's GeoTransform
// element
func (gt GeoTransform) String() string {
	parts := make([]string, len(gt))
	for i, coefficient := range gt {
		parts[i] = strconv.FormatFloat(coefficient, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
