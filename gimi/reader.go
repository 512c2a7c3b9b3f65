// Package gimi assembles georeference metadata records from the frames
// of GIMI image files. Container decoding itself is delegated to an
// external HEIF library; this package only consumes each frame's raw
// KLV payload and pixel dimensions.
package gimi

import (
	"fmt"

	"github.com/ricardogsilva/gimirrai/klv"
	"github.com/ricardogsilva/gimirrai/model"
	"github.com/ricardogsilva/gimirrai/util"
)

// Frame is one image frame of a GIMI container: the raw KLV metadata
// payload attached to it plus its pixel dimensions
type Frame struct {
	Payload []byte
	Width   int
	Height  int
}

// FrameSource enumerates the frames of an image container in container
// order
type FrameSource interface {
	Frames() ([]Frame, error)
}

// SingleFrameSource yields one preassembled frame; useful when the KLV
// payload arrives as a raw dump rather than inside a container
type SingleFrameSource Frame

// Frames implements the FrameSource interface
func (s SingleFrameSource) Frames() ([]Frame, error) {
	return []Frame{Frame(s)}, nil
}

// ExtractOptions controls metadata extraction
type ExtractOptions struct {
	// Path identifies the source file on the resulting record
	Path string
	// Bands carries the band descriptors reported by the raster
	// library; may be nil
	Bands map[int]model.BandDescriptor
	// Decoder overrides the default KLV decoder when non-nil
	Decoder *klv.Decoder
}

// Extract decodes the KLV metadata of every frame the source yields and
// assembles the per-frame georeference records. A frame whose metadata
// cannot be decoded or assembled is dropped with an alert; a file
// yielding no usable frames at all is an error.
func Extract(source FrameSource, options ExtractOptions, context util.LogContext) (*model.FileMetadata, error) {
	decoder := options.Decoder
	if decoder == nil {
		decoder = klv.NewDecoder(context)
	}
	frames, err := source.Frames()
	if err != nil {
		return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to read frames from %v: ", options.Path), err)
	}
	images := make([]model.ImageMetadata, 0, len(frames))
	for index, frame := range frames {
		fields, err := decoder.Decode(frame.Payload)
		if err != nil {
			util.LogAlert(context, fmt.Sprintf("Dropping frame %d of %v: %v", index, options.Path, err))
			continue
		}
		image, err := AssembleImageMetadata(fields, frame.Width, frame.Height, options.Bands)
		if err != nil {
			util.LogAlert(context, fmt.Sprintf("Dropping frame %d of %v: %v", index, options.Path, err))
			continue
		}
		images = append(images, *image)
	}
	if len(images) == 0 {
		return nil, util.Error{
			LogMsg:    fmt.Sprintf("No georeferenced frames could be extracted from %v", options.Path),
			SimpleMsg: "no georeferenced frames found",
		}.Log(context, "")
	}
	return &model.FileMetadata{Path: options.Path, Images: images}, nil
}
