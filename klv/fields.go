package klv

import "time"

// Field identifies a decoded KLV field.
type Field string

// Fields decoded from the ST0601 local set embedded in GIMI files
const (
	FieldChecksum              Field = "checksum"
	FieldBeginPosition         Field = "begin_position"
	FieldTitle                 Field = "title"
	FieldST0601Version         Field = "st0601_version"
	FieldPt1NorthBoundLatitude Field = "pt1_north_bound_latitude"
	FieldPt1WestBoundLongitude Field = "pt1_west_bound_longitude"
	FieldPt2NorthBoundLatitude Field = "pt2_north_bound_latitude"
	FieldPt2EastBoundLongitude Field = "pt2_east_bound_longitude"
	FieldPt3SouthBoundLatitude Field = "pt3_south_bound_latitude"
	FieldPt3EastBoundLongitude Field = "pt3_east_bound_longitude"
	FieldPt4SouthBoundLatitude Field = "pt4_south_bound_latitude"
	FieldPt4WestBoundLongitude Field = "pt4_west_bound_longitude"
)

// FieldMap maps each decoded field to its domain value. Values are one
// of string, float64 (decimal degrees), uint64, or time.Time, depending
// on the field's wire format and transform. A field that could not be
// decoded is absent, never present with a zero value.
type FieldMap map[Field]interface{}

// Has returns true if the field was decoded
func (fm FieldMap) Has(field Field) bool {
	_, ok := fm[field]
	return ok
}

// Complete returns true if the decode ran all the way to a checksum
// field, meaning the metadata set was fully read
func (fm FieldMap) Complete() bool {
	return fm.Has(FieldChecksum)
}

// String returns the field's value as text
func (fm FieldMap) String(field Field) (string, bool) {
	value, ok := fm[field].(string)
	return value, ok
}

// Angle returns the field's value in decimal degrees
func (fm FieldMap) Angle(field Field) (float64, bool) {
	value, ok := fm[field].(float64)
	return value, ok
}

// Time returns the field's value as a timestamp
func (fm FieldMap) Time(field Field) (time.Time, bool) {
	value, ok := fm[field].(time.Time)
	return value, ok
}

// Uint returns the field's raw integer value
func (fm FieldMap) Uint(field Field) (uint64, bool) {
	value, ok := fm[field].(uint64)
	return value, ok
}
