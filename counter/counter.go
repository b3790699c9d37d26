package counter

import (
	"path/filepath"

	"github.com/frommie/starsort/picasa"
	"github.com/karrick/godirwalk"
)

// DirCounter counts the directories a scan will visit
type DirCounter struct {
	DirCount int
}

func (c *DirCounter) CountDirs(roots []string) error {
	for _, root := range roots {
		// Only the root itself may be a symlink
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			return err
		}
		err = godirwalk.Walk(resolved, &godirwalk.Options{
			Unsorted: true,
			Callback: func(path string, de *godirwalk.Dirent) error {
				if !de.IsDir() {
					return nil
				}
				if picasa.IsOriginalsDir(filepath.Base(path)) {
					return godirwalk.SkipThis
				}
				c.DirCount++
				return nil
			},
			ErrorCallback: func(string, error) godirwalk.ErrorAction {
				return godirwalk.SkipNode // skip unreadable entries
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
