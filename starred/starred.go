// Package starred holds the starred images found during a scan.
package starred

import (
	"strings"

	"github.com/frommie/starsort/types"
)

type entry struct {
	path        string
	orientation types.Orientation
}

// Set maps image paths to their orientation. Keys compare case-insensitively
// and iteration follows discovery order.
type Set struct {
	index   map[string]int
	entries []entry
}

func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Put records path under orientation. A path seen before keeps its position
// and spelling, only the orientation is replaced.
func (s *Set) Put(path string, orientation types.Orientation) {
	key := strings.ToLower(path)
	if i, ok := s.index[key]; ok {
		s.entries[i].orientation = orientation
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, entry{path: path, orientation: orientation})
}

func (s *Set) Get(path string) (types.Orientation, bool) {
	i, ok := s.index[strings.ToLower(path)]
	if !ok {
		return "", false
	}
	return s.entries[i].orientation, true
}

func (s *Set) Len() int {
	return len(s.entries)
}

// Paths returns the paths recorded under orientation in discovery order
func (s *Set) Paths(orientation types.Orientation) []string {
	var paths []string
	for _, e := range s.entries {
		if e.orientation == orientation {
			paths = append(paths, e.path)
		}
	}
	return paths
}

func (s *Set) Count(orientation types.Orientation) int {
	n := 0
	for _, e := range s.entries {
		if e.orientation == orientation {
			n++
		}
	}
	return n
}
