// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package klv decodes the ST0601-style KLV metadata stream embedded in
// GIMI image files.
//
// The decoder makes some assumptions about the nature of the KLV
// bytestream:
//
//   - contents have big-endian byte order
//
//   - KLV size is in BER short form (a single byte, so size < 128)
//
//   - tag value is in BER-OID short form (a single byte, so tag < 128)
package klv

import (
	"errors"
	"fmt"

	"github.com/ricardogsilva/gimirrai/util"
)

// ErrShortBuffer is returned when the buffer ends before a declared
// field length is satisfied
var ErrShortBuffer = errors.New("klv: buffer too short")

// DefaultMaxIterations bounds the decode loop so that malformed input
// cannot keep the decoder walking forever
const DefaultMaxIterations = 1000

// AngleEncoding selects how the raw 32-bit corner angle values are
// interpreted before conversion to degrees. Published variants of this
// format disagree on whether the value is signed or unsigned, so both
// readings are available; SignedAngles matches ST0601's int32 encoding.
type AngleEncoding int

// Angle encodings
const (
	SignedAngles AngleEncoding = iota
	UnsignedAngles
)

// reader is a bounds-checked cursor over the KLV buffer
type reader struct {
	data []byte
	pos  int
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrShortBuffer
	}
	value := r.data[r.pos]
	r.pos++
	return value, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, ErrShortBuffer
	}
	value := r.data[r.pos : r.pos+n]
	r.pos += n
	return value, nil
}

// Decoder decodes one KLV metadata buffer per call. The zero value is
// usable; Decode calls are independent, so a single Decoder may be
// shared across goroutines as long as its fields are not mutated.
type Decoder struct {
	// MaxIterations overrides DefaultMaxIterations when positive
	MaxIterations int
	// Angles selects the corner angle interpretation
	Angles AngleEncoding
	// LogContext receives decode diagnostics
	LogContext util.LogContext
}

// NewDecoder returns a Decoder with default settings logging to the
// given context
func NewDecoder(context util.LogContext) *Decoder {
	return &Decoder{MaxIterations: DefaultMaxIterations, LogContext: context}
}

// Decode walks the buffer reading (tag, length, value) triplets until a
// checksum field is decoded or the iteration bound is reached, and
// returns the decoded fields. The returned map may be partial: soft
// anomalies (unknown tags, unsupported long-form encodings, running out
// of iterations before a checksum) are logged and recovered from, and
// callers can check FieldMap.Complete to decide policy. Hard anomalies
// (a buffer shorter than a declared length, invalid UTF-8 in a string
// field) return the fields decoded so far together with an error.
func (d *Decoder) Decode(buffer []byte) (FieldMap, error) {
	context := d.LogContext
	if context == nil {
		context = &util.BasicLogContext{}
	}
	maxIterations := d.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	r := &reader{data: buffer}
	result := FieldMap{}
	for iterations := 0; !result.Complete() && iterations < maxIterations; iterations++ {
		tag, err := r.readByte()
		if err != nil {
			return result, err
		}
		if tag >= 0x80 {
			// Long-form tags carry their id across several bytes; without
			// decoding them the true field length is unknowable, so the
			// cursor cannot resynchronize past this point.
			util.LogAlert(context, fmt.Sprintf("Found tag number bigger than 127 at offset %d, reading is not implemented, skipping", r.pos-1))
			continue
		}
		descriptor, known := tagTable[tag]
		if !known {
			if err := d.skipUnknown(context, r, tag); err != nil {
				return result, err
			}
			continue
		}
		size, err := r.readByte()
		if err != nil {
			return result, err
		}
		if size >= 0x80 {
			util.LogAlert(context, fmt.Sprintf("Found a size bigger than 127 for field %q, reading is not implemented, skipping", descriptor.Field))
			continue
		}
		raw, err := r.readBytes(int(size))
		if err != nil {
			return result, err
		}
		value, ok, err := d.decodeValue(descriptor, raw)
		if err != nil {
			return result, err
		}
		if !ok {
			util.LogAlert(context, fmt.Sprintf("Could not decode field %q, omitting it", descriptor.Field))
			continue
		}
		result[descriptor.Field] = value
	}
	if !result.Complete() {
		util.LogAlert(context, "Could not find value for checksum - Might have not read all values")
	}
	return result, nil
}

// skipUnknown consumes an unknown tag's length and payload as a unit so
// that the cursor stays aligned with the following field
func (d *Decoder) skipUnknown(context util.LogContext, r *reader, tag byte) error {
	size, err := r.readByte()
	if err != nil {
		return err
	}
	if size >= 0x80 {
		util.LogAlert(context, fmt.Sprintf("Found a size bigger than 127 for unknown tag %d, reading is not implemented, skipping", tag))
		return nil
	}
	if _, err := r.readBytes(int(size)); err != nil {
		return err
	}
	util.LogInfo(context, fmt.Sprintf("Found unknown tag: %d, skipping %d payload bytes", tag, size))
	return nil
}

func (d *Decoder) decodeValue(descriptor TagDescriptor, raw []byte) (interface{}, bool, error) {
	if descriptor.Format == String {
		value, err := DecodeString(raw)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	}
	want := descriptor.Format.size()
	if len(raw) != want {
		return nil, false, fmt.Errorf("klv: field %q declared %d payload bytes, wire format needs %d", descriptor.Field, len(raw), want)
	}
	var value uint64
	for _, b := range raw {
		value = value<<8 | uint64(b)
	}
	if descriptor.Transform != nil {
		transformed, ok := descriptor.Transform(d, value)
		return transformed, ok, nil
	}
	return value, true, nil
}
