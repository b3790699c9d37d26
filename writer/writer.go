// Package writer writes the per-orientation file lists.
package writer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/frommie/starsort/constants"
	"github.com/frommie/starsort/starred"
	"github.com/frommie/starsort/types"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// Newline follows the platform convention
var Newline = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Write replaces the file of every target with the paths recorded under its
// orientation. Targets sharing a path end up in one file, in target order.
// A failing target does not stop the others; all failures are returned together.
func Write(targets []types.Target, set *starred.Set) error {
	var result *multierror.Error

	// Remove old output once per distinct path before anything is written
	cleared := make(map[string]error)
	for _, target := range targets {
		if _, seen := cleared[target.Path]; seen {
			continue
		}
		err := os.Remove(target.Path)
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		cleared[target.Path] = err
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("Error deleting %s: %w", target.Path, err))
		}
	}

	for _, target := range targets {
		if cleared[target.Path] != nil {
			continue
		}

		paths := set.Paths(target.Orientation)
		if len(paths) == 0 {
			klog.Infof("No %s images found", target.Orientation)
			continue
		}

		if err := appendLines(target.Path, paths); err != nil {
			result = multierror.Append(result, fmt.Errorf("Error writing %s images to %s: %w", target.Orientation, target.Path, err))
			continue
		}
		klog.Infof("Wrote %d %s images to %s", len(paths), target.Orientation, target.Path)
	}

	return result.ErrorOrNil()
}

func appendLines(path string, lines []string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, constants.OutputFileMode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + Newline); err != nil {
			return err
		}
	}
	return w.Flush()
}
