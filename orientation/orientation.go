// Package orientation determines whether an image is portrait, landscape or square.
package orientation

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/frommie/starsort/jpeg"
	"github.com/frommie/starsort/types"
	"github.com/rwcarlsen/goexif/exif"
	"k8s.io/klog/v2"
)

// Classify compares pixel width and height
func Classify(width, height int) types.Orientation {
	switch {
	case width > height:
		return types.Landscape
	case width < height:
		return types.Portrait
	default:
		return types.Square
	}
}

// FromFile classifies the image at path. With exifRotate set, images whose
// EXIF orientation turns them by 90 degrees have width and height swapped.
func FromFile(path string, exifRotate bool) (types.Orientation, error) {
	width, height, err := Dimensions(path)
	if err != nil {
		return "", err
	}

	if exifRotate && isQuarterTurn(path) {
		width, height = height, width
	}

	return Classify(width, height), nil
}

// Dimensions returns the stored pixel size of an image. JPEG frame headers
// are read directly; anything else is decoded.
func Dimensions(path string) (int, int, error) {
	if jpeg.IsJpeg(path) {
		width, height, err := jpeg.Dimensions(path)
		if err == nil {
			return width, height, nil
		}
		klog.V(2).Infof("frame header of %s unreadable, decoding: %v", path, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("error opening image: %w", err)
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// isQuarterTurn reports whether the EXIF orientation tag is one of the
// transposing values 5-8. Missing or unreadable EXIF counts as upright.
func isQuarterTurn(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		klog.V(2).Infof("no EXIF data in %s: %v", path, err)
		return false
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return false
	}
	value, err := tag.Int(0)
	if err != nil {
		return false
	}
	return value >= 5 && value <= 8
}
