package jpeg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsoprea/go-jpeg-image-structure/v2"
)

const (
	// sofFirst and sofLast bound the start-of-frame markers (0xC0-0xCF)
	sofFirst = 0xC0
	sofLast  = 0xCF

	// markers inside the SOF range that do not start a frame
	dhtMarkerId = 0xC4
	jpgMarkerId = 0xC8
	dacMarkerId = 0xCC
)

// ErrNoFrame is returned when a JPEG carries no start-of-frame segment
var ErrNoFrame = errors.New("no start-of-frame segment found")

// IsJpeg reports whether path has a JPEG file extension
func IsJpeg(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".jpe":
		return true
	}
	return false
}

// Dimensions reads width and height from the frame header of a JPEG file
// without decoding the image data
func Dimensions(jpgPath string) (int, int, error) {
	data, err := os.ReadFile(jpgPath)
	if err != nil {
		return 0, 0, fmt.Errorf("error reading file: %w", err)
	}

	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(data)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing JPEG file: %w", err)
	}

	sl := intfc.(*jpegstructure.SegmentList)
	for _, segment := range sl.Segments() {
		if !isFrameMarker(segment.MarkerId) {
			continue
		}
		// precision (1), height (2), width (2)
		if len(segment.Data) < 5 {
			return 0, 0, fmt.Errorf("short start-of-frame segment (%d bytes)", len(segment.Data))
		}
		height := int(binary.BigEndian.Uint16(segment.Data[1:3]))
		width := int(binary.BigEndian.Uint16(segment.Data[3:5]))
		return width, height, nil
	}

	return 0, 0, ErrNoFrame
}

func isFrameMarker(markerId byte) bool {
	if markerId < sofFirst || markerId > sofLast {
		return false
	}
	return markerId != dhtMarkerId && markerId != jpgMarkerId && markerId != dacMarkerId
}
