package klv

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/ricardogsilva/gimirrai/util"
)

// angleDenominator is 2^32 - 2, per the ST0601 compressed-angle scheme
const angleDenominator = 4294967294

// DecodeLatitude converts a raw signed 32-bit latitude to decimal
// degrees, implementing the description in MISB ST0601 section 8.82
func DecodeLatitude(raw int32) float64 {
	return float64(raw) * 180 / angleDenominator
}

// DecodeLatitudeUnsigned is the unsigned variant of DecodeLatitude; see
// AngleEncoding for why both interpretations exist
func DecodeLatitudeUnsigned(raw uint32) float64 {
	return float64(raw) * 180 / angleDenominator
}

// DecodeLongitude converts a raw signed 32-bit longitude to decimal
// degrees, implementing the description in MISB ST0601 section 8.83
func DecodeLongitude(raw int32) float64 {
	return float64(raw) * 360 / angleDenominator
}

// DecodeLongitudeUnsigned is the unsigned variant of DecodeLongitude
func DecodeLongitudeUnsigned(raw uint32) float64 {
	return float64(raw) * 360 / angleDenominator
}

// DecodeTimestamp converts a precision time stamp, given as microseconds
// elapsed since midnight January 1st 1970 not including leap seconds, to
// a UTC instant (MISB ST0601 section 8.2). Returns false if the raw
// value is outside the representable range.
func DecodeTimestamp(microseconds uint64) (time.Time, bool) {
	if microseconds > math.MaxInt64/1000 {
		return time.Time{}, false
	}
	return time.Unix(0, int64(microseconds)*1000).UTC(), true
}

// DecodeString converts a raw field payload to text. Payloads that are
// not valid UTF-8 are a hard malformed-field error.
func DecodeString(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", util.Error{
			LogMsg:    "String field payload is not valid UTF-8",
			SimpleMsg: "malformed string field",
		}
	}
	return string(raw), nil
}
