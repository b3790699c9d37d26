package processor

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/frommie/starsort/config"
	"github.com/frommie/starsort/counter"
	"github.com/frommie/starsort/orientation"
	"github.com/frommie/starsort/picasa"
	"github.com/frommie/starsort/starred"
	"github.com/frommie/starsort/types"
	"github.com/karrick/godirwalk"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

type ImageProcessor struct {
	Config       *config.Config
	ShowProgress bool
	Starred      *starred.Set
	counter      *counter.DirCounter
	dirBar       *progressbar.ProgressBar
}

func NewImageProcessor(cfg *config.Config, showProgress bool) *ImageProcessor {
	return &ImageProcessor{
		Config:       cfg,
		ShowProgress: showProgress,
		Starred:      starred.NewSet(),
	}
}

// Helper methods for output; the progress bar is redrawn below each line
func (p *ImageProcessor) logf(format string, args ...interface{}) {
	p.clearBar()
	klog.InfoDepthf(1, format, args...)
	p.renderBar()
}

func (p *ImageProcessor) warnf(format string, args ...interface{}) {
	p.clearBar()
	klog.WarningDepthf(1, format, args...)
	p.renderBar()
}

func (p *ImageProcessor) verbosef(format string, args ...interface{}) {
	if !klog.V(1).Enabled() {
		return
	}
	p.clearBar()
	klog.InfoDepthf(1, format, args...)
	p.renderBar()
}

func (p *ImageProcessor) errorf(format string, args ...interface{}) {
	p.clearBar()
	klog.ErrorDepthf(1, format, args...)
	p.renderBar()
}

func (p *ImageProcessor) clearBar() {
	if p.dirBar != nil {
		p.dirBar.Clear()
	}
}

func (p *ImageProcessor) renderBar() {
	if p.dirBar != nil {
		p.dirBar.RenderBlank()
	}
}

// Process scans every input directory and returns the starred images found
func (p *ImageProcessor) Process() *starred.Set {
	if p.Starred == nil {
		p.Starred = starred.NewSet()
	}

	if p.ShowProgress {
		p.counter = &counter.DirCounter{}
		if err := p.counter.CountDirs(p.Config.Inputs); err != nil {
			klog.Warningf("Unable to count directories: %v", err)
		}

		p.dirBar = progressbar.NewOptions(p.counter.DirCount,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Scanning directories..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	for _, root := range p.Config.Inputs {
		p.logf("Processing directory %s", root)
		if err := p.Walk(root); err != nil {
			p.warnf("Warning: Error scanning %s: %v", root, err)
		}
	}

	if p.dirBar != nil {
		p.dirBar.Finish()
		p.dirBar = nil
	}

	p.logf("Found %d starred images in total", p.Starred.Len())
	return p.Starred
}

// Walk visits root and every directory below it, except Picasa's originals folders.
// A symlinked root is followed; links below it are not. Paths keep the
// spelling of root.
func (p *ImageProcessor) Walk(root string) error {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return err
	}

	return godirwalk.Walk(resolved, &godirwalk.Options{
		Callback: func(walked string, de *godirwalk.Dirent) error {
			if !de.IsDir() {
				return nil
			}
			path, err := underRoot(root, resolved, walked)
			if err != nil {
				return err
			}
			if picasa.IsOriginalsDir(filepath.Base(path)) {
				p.verbosef("Skipping originals directory %s", path)
				return godirwalk.SkipThis
			}

			if p.dirBar != nil {
				p.dirBar.Add(1)
			}
			if _, err := p.ProcessDirectory(path); err != nil {
				p.warnf("Warning: Error processing %s: %v", path, err)
			}
			return nil
		},
		ErrorCallback: func(walked string, err error) godirwalk.ErrorAction {
			path, relErr := underRoot(root, resolved, walked)
			if relErr != nil {
				path = walked
			}
			if errors.Is(err, os.ErrNotExist) {
				p.logf("Info: Skip non-existing path: %s", path)
			} else {
				p.warnf("Warning: Error accessing %s: %v", path, err)
			}
			return godirwalk.SkipNode
		},
	})
}

// underRoot maps a path below the resolved root back below root
func underRoot(root, resolved, walked string) (string, error) {
	rel, err := filepath.Rel(resolved, walked)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, rel), nil
}

// ProcessDirectory records the starred images listed in the sidecar of dir
// and returns how many were recorded
func (p *ImageProcessor) ProcessDirectory(dir string) (int, error) {
	sections, err := picasa.ReadStarred(dir)
	if err != nil {
		return 0, err
	}

	_, hasAll := p.Config.AllTarget()

	found := 0
	for _, name := range sections {
		imagePath := filepath.Join(dir, name)

		if p.Config.CheckExists {
			if _, err := os.Stat(imagePath); err != nil {
				p.verbosef("Starred image %s not found: %v", imagePath, err)
				continue
			}
		}

		label := types.All
		if !hasAll {
			label, err = orientation.FromFile(imagePath, p.Config.ExifOrientation)
			if err != nil {
				p.errorf("Error reading image %s: %v", imagePath, err)
				continue
			}
		}

		p.Starred.Put(imagePath, label)
		found++
	}

	if found > 0 {
		p.logf("Found %d starred images in %s", found, dir)
	} else {
		p.verbosef("No starred images in %s", dir)
	}
	return found, nil
}
