package gimi

import (
	"errors"
	"fmt"
	"io"

	"go4.org/media/heif"
	"go4.org/media/heif/bmff"
)

// ErrNoMetadataItems is returned when a container holds no KLV
// metadata items at all
var ErrNoMetadataItems = errors.New("gimi: no KLV metadata items found in container")

// metadata item types that carry the KLV payload; GIMI files store the
// ST0601 local set as a urn-named "uri " item
var metadataItemTypes = map[string]bool{
	"uri ": true,
	"mime": true,
}

// a declared metadata extent larger than this is treated as corrupt
const maxMetadataSize = 10 << 20

// HeifSource adapts a HEIF/GIMI container, as exposed by the external
// go4.org HEIF library, into a FrameSource. Image items and metadata
// items are paired in container order; when the container carries a
// single metadata item, it applies to every image item.
type HeifSource struct {
	ra io.ReaderAt
}

// NewHeifSource returns a HeifSource reading the container from ra. The
// caller keeps ownership of the underlying reader.
func NewHeifSource(ra io.ReaderAt) *HeifSource {
	return &HeifSource{ra: ra}
}

// Frames implements the FrameSource interface
func (h *HeifSource) Frames() ([]Frame, error) {
	itemInfo, itemLocation, err := h.readMetaBoxes()
	if err != nil {
		return nil, err
	}
	if itemInfo == nil {
		return nil, errors.New("gimi: container has no item info box")
	}

	file := heif.Open(h.ra)
	var frames []Frame
	var payloads [][]byte
	for _, entry := range itemInfo.ItemInfos {
		if metadataItemTypes[entry.ItemType] {
			payload, err := h.readItemPayload(uint32(entry.ItemID), itemLocation)
			if err != nil {
				return nil, err
			}
			payloads = append(payloads, payload)
			continue
		}
		item, err := file.ItemByID(uint32(entry.ItemID))
		if err != nil {
			continue
		}
		if width, height, ok := item.SpatialExtents(); ok {
			frames = append(frames, Frame{Width: width, Height: height})
		}
	}
	if len(payloads) == 0 {
		return nil, ErrNoMetadataItems
	}
	for index := range frames {
		if len(payloads) == 1 {
			frames[index].Payload = payloads[0]
		} else if index < len(payloads) {
			frames[index].Payload = payloads[index]
		}
	}
	return frames, nil
}

// readMetaBoxes walks the container's meta box children for the item
// info and item location boxes
func (h *HeifSource) readMetaBoxes() (*bmff.ItemInfoBox, *bmff.ItemLocationBox, error) {
	const assumedMaxSize = 5 << 40
	sr := io.NewSectionReader(h.ra, 0, assumedMaxSize)
	bmr := bmff.NewReader(sr)

	if _, err := bmr.ReadAndParseBox(bmff.TypeFtyp); err != nil {
		return nil, nil, fmt.Errorf("gimi: reading file type box: %w", err)
	}
	pbox, err := bmr.ReadAndParseBox(bmff.TypeMeta)
	if err != nil {
		return nil, nil, fmt.Errorf("gimi: reading meta box: %w", err)
	}
	metabox, ok := pbox.(*bmff.MetaBox)
	if !ok {
		return nil, nil, errors.New("gimi: unexpected meta box type")
	}

	var itemInfo *bmff.ItemInfoBox
	var itemLocation *bmff.ItemLocationBox
	for _, box := range metabox.Children {
		parsed, err := box.Parse()
		if err == bmff.ErrUnknownBox {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		switch v := parsed.(type) {
		case *bmff.ItemInfoBox:
			itemInfo = v
		case *bmff.ItemLocationBox:
			itemLocation = v
		}
	}
	return itemInfo, itemLocation, nil
}

// readItemPayload concatenates the raw bytes of every extent of the
// given item
func (h *HeifSource) readItemPayload(id uint32, itemLocation *bmff.ItemLocationBox) ([]byte, error) {
	if itemLocation == nil {
		return nil, fmt.Errorf("gimi: container said item %d exists but has no item location box", id)
	}
	for _, entry := range itemLocation.Items {
		if uint32(entry.ItemID) != id {
			continue
		}
		var payload []byte
		for _, extent := range entry.Extents {
			if extent.Length > maxMetadataSize {
				return nil, fmt.Errorf("gimi: declared metadata size %d exceeds threshold of %d bytes", extent.Length, maxMetadataSize)
			}
			section := make([]byte, extent.Length)
			if _, err := h.ra.ReadAt(section, int64(extent.Offset)); err != nil {
				return nil, err
			}
			payload = append(payload, section...)
		}
		return payload, nil
	}
	return nil, fmt.Errorf("gimi: no location found for metadata item %d", id)
}
