package gimi

import (
	"fmt"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/ricardogsilva/gimirrai/klv"
	"github.com/ricardogsilva/gimirrai/model"
)

// MissingFieldError reports a KLV field without which a frame cannot be
// georeferenced
type MissingFieldError struct {
	Field klv.Field
}

func (err MissingFieldError) Error() string {
	return fmt.Sprintf("gimi: required georeference field %q is missing", err.Field)
}

// AssembleImageMetadata turns one frame's decoded KLV fields plus its
// pixel dimensions into a georeference record. The pt1 corner is taken
// as the upper-left bound and the pt3 corner as the lower-right bound;
// a missing corner bound is a hard error for the frame, never defaulted.
// Band descriptors come from the raster library and may be nil.
func AssembleImageMetadata(fields klv.FieldMap, width, height int, bands map[int]model.BandDescriptor) (*model.ImageMetadata, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gimi: invalid pixel dimensions %dx%d", width, height)
	}
	upperLeftLon, ok := fields.Angle(klv.FieldPt1WestBoundLongitude)
	if !ok {
		return nil, MissingFieldError{klv.FieldPt1WestBoundLongitude}
	}
	upperLeftLat, ok := fields.Angle(klv.FieldPt1NorthBoundLatitude)
	if !ok {
		return nil, MissingFieldError{klv.FieldPt1NorthBoundLatitude}
	}
	lowerRightLon, ok := fields.Angle(klv.FieldPt3EastBoundLongitude)
	if !ok {
		return nil, MissingFieldError{klv.FieldPt3EastBoundLongitude}
	}
	lowerRightLat, ok := fields.Angle(klv.FieldPt3SouthBoundLatitude)
	if !ok {
		return nil, MissingFieldError{klv.FieldPt3SouthBoundLatitude}
	}

	xResolution := (lowerRightLon - upperLeftLon) / float64(width)
	// negative whenever the north bound exceeds the south bound
	yResolution := (lowerRightLat - upperLeftLat) / float64(height)

	title, _ := fields.String(klv.FieldTitle)
	image := model.ImageMetadata{
		GeoTransform: model.NewGeoTransform(upperLeftLon, xResolution, upperLeftLat, yResolution),
		Bands:        bands,
		BoundingBox: geojson.NewPolygon([][][]float64{{
			{upperLeftLon, upperLeftLat},
			{lowerRightLon, upperLeftLat},
			{lowerRightLon, lowerRightLat},
			{upperLeftLon, lowerRightLat},
			{upperLeftLon, upperLeftLat},
		}}),
		GroundControlPoints: groundControlPoints(upperLeftLon, upperLeftLat, lowerRightLon, lowerRightLat, width, height),
		Corners:             cornerSet(fields),
		CRS:                 model.WGS84EPSGCode,
		Width:               width,
		Height:              height,
		XResolution:         xResolution,
		YResolution:         yResolution,
		UpperLeftLon:        upperLeftLon,
		UpperLeftLat:        upperLeftLat,
		LowerRightLon:       lowerRightLon,
		LowerRightLat:       lowerRightLat,
		Title:               title,
	}
	if beginPosition, ok := fields.Time(klv.FieldBeginPosition); ok {
		image.BeginPosition = &beginPosition
	}
	return &image, nil
}

// groundControlPoints maps the four pixel corners onto the rectangle
// corners derived from the two known geographic bounds. The top edge
// uses the pt1 latitude for both top points and the bottom edge uses
// the pt3 latitude, since only an axis-aligned rectangle is modeled.
func groundControlPoints(upperLeftLon, upperLeftLat, lowerRightLon, lowerRightLat float64, width, height int) []model.GroundControlPoint {
	w := float64(width)
	h := float64(height)
	return []model.GroundControlPoint{
		{ID: "1", Pixel: 0, Line: 0, X: upperLeftLon, Y: upperLeftLat},
		{ID: "2", Pixel: w, Line: 0, X: lowerRightLon, Y: upperLeftLat},
		{ID: "3", Pixel: w, Line: h, X: lowerRightLon, Y: lowerRightLat},
		{ID: "4", Pixel: 0, Line: h, X: upperLeftLon, Y: lowerRightLat},
	}
}

func cornerSet(fields klv.FieldMap) model.CornerSet {
	return model.CornerSet{
		Pt1: corner(fields, klv.FieldPt1WestBoundLongitude, klv.FieldPt1NorthBoundLatitude),
		Pt2: corner(fields, klv.FieldPt2EastBoundLongitude, klv.FieldPt2NorthBoundLatitude),
		Pt3: corner(fields, klv.FieldPt3EastBoundLongitude, klv.FieldPt3SouthBoundLatitude),
		Pt4: corner(fields, klv.FieldPt4WestBoundLongitude, klv.FieldPt4SouthBoundLatitude),
	}
}

func corner(fields klv.FieldMap, lonField, latField klv.Field) *model.Corner {
	lon, lonOK := fields.Angle(lonField)
	lat, latOK := fields.Angle(latField)
	if !lonOK || !latOK {
		return nil
	}
	return &model.Corner{Lon: lon, Lat: lat}
}
