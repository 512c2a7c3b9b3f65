package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// BandDescriptor describes one raster band of a GIMI image, as reported
// by the raster library that owns pixel access. It is independent of the
// KLV metadata and is carried on the record for downstream consumers.
type BandDescriptor struct {
	Index       int
	PixelType   string
	NoDataValue *float64
	Units       *string
}

// GroundControlPoint ties a pixel location (Pixel is the column, Line
// the row) to a geographic coordinate
type GroundControlPoint struct {
	ID    string
	Pixel float64
	Line  float64
	X     float64
	Y     float64
}

// Corner is one decoded footprint corner
type Corner struct {
	Lon float64
	Lat float64
}

// CornerSet holds every footprint corner found in the KLV metadata.
// Only Pt1 (upper left) and Pt3 (lower right) drive georeferencing; the
// others are surfaced for consumers that want the full quadrilateral.
type CornerSet struct {
	Pt1 *Corner
	Pt2 *Corner
	Pt3 *Corner
	Pt4 *Corner
}

// ImageMetadata is the georeference record assembled for a single frame
// of a GIMI file. It is immutable once assembled.
type ImageMetadata struct {
	GeoTransform        GeoTransform
	Bands               map[int]BandDescriptor
	BoundingBox         *geojson.Polygon
	GroundControlPoints []GroundControlPoint
	Corners             CornerSet
	CRS                 int
	Width               int
	Height              int
	XResolution         float64
	YResolution         float64
	UpperLeftLon        float64
	UpperLeftLat        float64
	LowerRightLon       float64
	LowerRightLat       float64
	Title               string
	BeginPosition       *time.Time
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (im ImageMetadata) GeoJSONFeature() (*geojson.Feature, error) {
	properties := map[string]interface{}{
		"crs":         im.CRS,
		"width":       im.Width,
		"height":      im.Height,
		"xResolution": im.XResolution,
		"yResolution": im.YResolution,
		"title":       im.Title,
	}
	if im.BeginPosition != nil {
		properties["beginPosition"] = im.BeginPosition.Format(time.RFC3339Nano)
	}
	f := geojson.NewFeature(im.BoundingBox, im.Title, properties)
	f.Bbox = f.ForceBbox()
	return f, nil
}

// FileMetadata is the full set of per-frame georeference records
// extracted from one GIMI file, one entry per frame in container order
type FileMetadata struct {
	Path   string
	Images []ImageMetadata
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (fm FileMetadata) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	features := make([]*geojson.Feature, 0, len(fm.Images))
	for _, image := range fm.Images {
		feature, err := image.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}
	return geojson.NewFeatureCollection(features), nil
}
