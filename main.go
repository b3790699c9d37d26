package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/frommie/starsort/config"
	"github.com/frommie/starsort/processor"
	"github.com/frommie/starsort/types"
	"github.com/frommie/starsort/writer"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// klogFlags carries -v, --log_file and friends onto every command
var klogFlags = flag.NewFlagSet("klog", flag.ExitOnError)

func init() {
	klog.InitFlags(klogFlags)
}

type options struct {
	configPath      string
	targets         map[types.Orientation]*string
	checkExists     bool
	exifOrientation bool
	progress        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{targets: make(map[types.Orientation]*string)}

	cmd := &cobra.Command{
		Use:   "starsort [flags] DIR...",
		Short: "List Picasa starred photos by orientation",
		Long: strings.TrimSpace(`
Scans directories for Picasa .picasa.ini files, collects the images marked as
starred and writes their paths into one text file per orientation.
`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	for _, o := range types.Orientations {
		opts.targets[o] = flags.String(string(o), "", fmt.Sprintf("write %s images to this file", o))
	}
	flags.BoolVarP(&opts.checkExists, "check-exists", "e", false, "skip starred images missing on disk")
	flags.BoolVar(&opts.exifOrientation, "exif-orientation", false, "honour EXIF rotation when classifying")
	flags.BoolVarP(&opts.progress, "progress", "p", false, "show a progress bar while scanning")
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the config file
	cfg.Inputs = append(cfg.Inputs, args...)
	for _, o := range types.Orientations {
		if path := *opts.targets[o]; path != "" {
			cfg.SetTarget(o, path)
		}
	}
	if cmd.Flags().Changed("check-exists") {
		cfg.CheckExists = opts.checkExists
	}
	if cmd.Flags().Changed("exif-orientation") {
		cfg.ExifOrientation = opts.exifOrientation
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	set := processor.NewImageProcessor(cfg, opts.progress).Process()
	if err := writer.Write(cfg.Targets, set); err != nil {
		return err
	}
	return nil
}

func main() {
	defer klog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		klog.Exitf("starsort failed: %v", err)
	}
}
