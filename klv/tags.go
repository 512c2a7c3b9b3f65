package klv

// WireFormat describes how a field's raw value is laid out on the wire.
// Multi-byte integers are big-endian.
type WireFormat int

// Wire formats used by the ST0601 local set
const (
	UInt8 WireFormat = iota
	UInt16
	UInt32
	UInt64
	Int32
	String
)

// size returns the exact payload size a fixed-size format requires, or
// -1 for variable-size formats
func (wf WireFormat) size() int {
	switch wf {
	case UInt8:
		return 1
	case UInt16:
		return 2
	case UInt32, Int32:
		return 4
	case UInt64:
		return 8
	}
	return -1
}

type transformFunc func(d *Decoder, raw uint64) (interface{}, bool)

// TagDescriptor describes one entry of the tag table: the field a tag
// decodes into, its wire format, and an optional transform from the raw
// integer to a domain value (absent for strings and raw integers).
type TagDescriptor struct {
	Field     Field
	Format    WireFormat
	Transform transformFunc
}

// tagTable maps each supported one-byte tag id to its descriptor. Tag
// numbers, sizes and types come from the MISB ST0601 document.
var tagTable = map[byte]TagDescriptor{
	1:  {FieldChecksum, UInt16, nil},
	2:  {FieldBeginPosition, UInt64, transformTimestamp}, // precision time stamp
	3:  {FieldTitle, String, nil},                        // mission id
	65: {FieldST0601Version, UInt8, nil},                 // UAS Datalink LS version
	82: {FieldPt1NorthBoundLatitude, Int32, transformLatitude},
	83: {FieldPt1WestBoundLongitude, Int32, transformLongitude},
	84: {FieldPt2NorthBoundLatitude, Int32, transformLatitude},
	85: {FieldPt2EastBoundLongitude, Int32, transformLongitude},
	86: {FieldPt3SouthBoundLatitude, Int32, transformLatitude},
	87: {FieldPt3EastBoundLongitude, Int32, transformLongitude},
	88: {FieldPt4SouthBoundLatitude, Int32, transformLatitude},
	89: {FieldPt4WestBoundLongitude, Int32, transformLongitude},
}

func transformLatitude(d *Decoder, raw uint64) (interface{}, bool) {
	if d.Angles == UnsignedAngles {
		return DecodeLatitudeUnsigned(uint32(raw)), true
	}
	return DecodeLatitude(int32(uint32(raw))), true
}

func transformLongitude(d *Decoder, raw uint64) (interface{}, bool) {
	if d.Angles == UnsignedAngles {
		return DecodeLongitudeUnsigned(uint32(raw)), true
	}
	return DecodeLongitude(int32(uint32(raw))), true
}

func transformTimestamp(d *Decoder, raw uint64) (interface{}, bool) {
	stamp, ok := DecodeTimestamp(raw)
	if !ok {
		return nil, false
	}
	return stamp, true
}
