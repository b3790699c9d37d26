package types

import (
	"fmt"
	"strings"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
	Square    Orientation = "square"

	// All files every starred image under one target without inspecting dimensions
	All Orientation = "all"
)

// Orientations lists the labels in flag declaration order.
var Orientations = []Orientation{Portrait, Landscape, Square, All}

// ParseOrientation maps a label to an Orientation, ignoring case
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Orientations {
		if o == known {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown orientation: %q", s)
}

// Target is an output file receiving all starred images of one orientation
type Target struct {
	Orientation Orientation `yaml:"orientation"`
	Path        string      `yaml:"path"`
}
