// Package vrt rewrites virtual-raster (VRT) descriptors so that raster
// tooling reinterprets a GIMI pixel source with the georeferencing
// recovered from its KLV metadata. The reference descriptor comes from
// the external raster library; only its spatial metadata is replaced,
// everything else passes through untouched.
package vrt

import (
	"encoding/xml"
	"fmt"

	"github.com/ricardogsilva/gimirrai/model"
)

// Dataset is a virtual-raster document
type Dataset struct {
	XMLName      xml.Name     `xml:"VRTDataset"`
	RasterXSize  int          `xml:"rasterXSize,attr"`
	RasterYSize  int          `xml:"rasterYSize,attr"`
	SRS          *SRS         `xml:"SRS"`
	GeoTransform string       `xml:"GeoTransform,omitempty"`
	GCPList      *GCPList     `xml:"GCPList"`
	Bands        []RasterBand `xml:"VRTRasterBand"`
}

// SRS is the spatial reference element
type SRS struct {
	AxisMapping string `xml:"dataAxisToSRSAxisMapping,attr,omitempty"`
	WKT         string `xml:",chardata"`
}

// GCPList carries the dataset's ground control points
type GCPList struct {
	Projection string `xml:"Projection,attr,omitempty"`
	GCPs       []GCP  `xml:"GCP"`
}

// GCP is one ground control point element
type GCP struct {
	ID    string  `xml:"Id,attr"`
	Pixel float64 `xml:"Pixel,attr"`
	Line  float64 `xml:"Line,attr"`
	X     float64 `xml:"X,attr"`
	Y     float64 `xml:"Y,attr"`
}

// RasterBand carries one reference band through verbatim
type RasterBand struct {
	DataType string `xml:"dataType,attr,omitempty"`
	Band     string `xml:"band,attr,omitempty"`
	Content  string `xml:",innerxml"`
}

// Parse reads a reference descriptor produced by the raster library
func Parse(document []byte) (*Dataset, error) {
	var dataset Dataset
	if err := xml.Unmarshal(document, &dataset); err != nil {
		return nil, fmt.Errorf("vrt: parsing reference descriptor: %w", err)
	}
	return &dataset, nil
}

// Marshal serializes the dataset as an independently parseable XML
// document. Serialization is deterministic, so equal datasets always
// yield byte-identical documents.
func (d *Dataset) Marshal() ([]byte, error) {
	out, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// wellKnownText maps a record's EPSG code to the WKT raster tooling
// expects in the SRS element
func wellKnownText(epsg int) (string, error) {
	if epsg == model.WGS84EPSGCode {
		return model.WGS84WKT, nil
	}
	return "", fmt.Errorf("vrt: no well-known text registered for EPSG:%d", epsg)
}

// Rewrite overrides the dataset's spatial reference, geotransform and
// ground control points with the ones from the assembled record
func Rewrite(dataset *Dataset, meta *model.ImageMetadata) error {
	wkt, err := wellKnownText(meta.CRS)
	if err != nil {
		return err
	}
	dataset.SRS = &SRS{AxisMapping: "2,1", WKT: wkt}
	dataset.GeoTransform = meta.GeoTransform.String()
	points := make([]GCP, 0, len(meta.GroundControlPoints))
	for _, point := range meta.GroundControlPoints {
		points = append(points, GCP{ID: point.ID, Pixel: point.Pixel, Line: point.Line, X: point.X, Y: point.Y})
	}
	dataset.GCPList = &GCPList{Projection: wkt, GCPs: points}
	if dataset.RasterXSize == 0 {
		dataset.RasterXSize = meta.Width
	}
	if dataset.RasterYSize == 0 {
		dataset.RasterYSize = meta.Height
	}
	return nil
}

// Generate parses the reference descriptor, overrides its spatial
// metadata with the assembled record and returns the serialized result
func Generate(meta *model.ImageMetadata, reference []byte) ([]byte, error) {
	dataset, err := Parse(reference)
	if err != nil {
		return nil, err
	}
	if err := Rewrite(dataset, meta); err != nil {
		return nil, err
	}
	return dataset.Marshal()
}
