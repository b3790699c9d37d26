// Package picasa reads the per-directory .picasa.ini sidecar files written by Picasa.
package picasa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/frommie/starsort/constants"
)

const (
	utf8BOM = "\ufeff"

	// Picasa stores face rectangles on a single line, which can get long
	maxLineLength = 1 << 20
)

// StarredSections returns the names of all sections containing a star=yes
// line, in the order they appear. Other keys are ignored.
func StarredSections(r io.Reader) ([]string, error) {
	var sections []string
	seen := make(map[string]bool)
	section := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, constants.CommentPrefix) {
			continue
		}

		if name, ok := sectionName(line); ok {
			section = name
			continue
		}

		if section == "" || !strings.EqualFold(line, constants.StarMarker) {
			continue
		}
		if !seen[section] {
			seen[section] = true
			sections = append(sections, section)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Error reading sidecar: %w", err)
	}

	return sections, nil
}

func sectionName(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return line[1 : len(line)-1], true
}

// ReadStarred reads the sidecar file directly inside dir. A directory without
// a sidecar yields no sections and no error.
func ReadStarred(dir string) ([]string, error) {
	file, err := os.Open(filepath.Join(dir, constants.SidecarName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Error opening sidecar in %s: %w", dir, err)
	}
	defer file.Close()

	return StarredSections(file)
}

// IsOriginalsDir reports whether name is the folder Picasa keeps unedited
// originals in. Those trees are never scanned.
func IsOriginalsDir(name string) bool {
	return strings.EqualFold(name, constants.OriginalsDir)
}
