package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chazu/detviz/internal/config"
	"github.com/chazu/detviz/internal/frameio"
	"github.com/chazu/detviz/internal/logger"
	"github.com/chazu/detviz/pkg/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds flag values shared by the subcommands.
type options struct {
	configPath string
	framePath  string
	pointsPath string
	outDir     string
	frameID    string
	format     string
	ignore     int
	show       bool
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "detviz",
		Short:        "Export 3D perception results as mesh files",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&opts.framePath, "frame", "f", "", "JSON frame file")
	pf.StringVarP(&opts.pointsPath, "points", "p", "", "point file (.pcd or .bin) replacing the frame's points")
	pf.StringVarP(&opts.outDir, "out", "o", "", "output directory (overrides config)")
	pf.StringVar(&opts.frameID, "id", "", "frame id (default: frame file name)")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&opts.logFile, "log-file", "", "rotating log file (overrides config)")
	root.MarkPersistentFlagRequired("frame")

	root.AddCommand(newDetCmd(opts), newSegCmd(opts))
	return root
}

// setup resolves config, logger and frame with priority defaults < file < flags.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *frameio.Frame, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(o.configPath); err != nil {
			return nil, nil, nil, err
		}
	}
	flags := cmd.Flags()
	if o.outDir != "" {
		cfg.OutputDir = o.outDir
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Logging.LogFile = o.logFile
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.BoxFormat = o.format
	}
	if flags.Lookup("ignore") != nil && flags.Changed("ignore") {
		ignore := o.ignore
		cfg.IgnoreLabel = &ignore
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.Logger())

	frame, err := frameio.LoadFrame(o.framePath)
	if err != nil {
		return nil, nil, nil, err
	}
	if o.pointsPath != "" {
		if frame.Points, err = frameio.LoadPoints(o.pointsPath); err != nil {
			return nil, nil, nil, err
		}
	}
	if o.frameID == "" {
		base := filepath.Base(o.framePath)
		o.frameID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return cfg, log, frame, nil
}

func newDetCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det",
		Short: "Export points with ground-truth and predicted boxes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, frame, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			format, err := export.ParseFormat(cfg.BoxFormat)
			if err != nil {
				return err
			}
			e := export.New(
				export.WithLogger(log),
				export.WithFormat(format),
				export.WithViewer(export.LogViewer{Logger: log}),
			)
			err = e.ExportFrame(export.DetFrame{
				Points:    frame.Points,
				GTBoxes:   frame.GTBoxes,
				PredBoxes: frame.PredBoxes,
				OutDir:    cfg.OutputDir,
				FrameID:   opts.frameID,
				Show:      opts.show,
			})
			if err != nil {
				return err
			}
			log.Info("exported frame", zap.String("frame", opts.frameID), zap.String("dir", filepath.Join(cfg.OutputDir, opts.frameID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "obj", "box mesh format: obj or stl")
	cmd.Flags().BoolVar(&opts.show, "show", false, "also show the frame in the viewer")
	return cmd
}

func newSegCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seg",
		Short: "Export points colored by ground-truth and predicted labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, frame, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			if len(cfg.Palette) == 0 && (frame.GTLabels != nil || frame.PredLabels != nil) {
				return fmt.Errorf("seg: labels given but the config has no palette")
			}
			e := export.New(export.WithLogger(log))
			err = e.ExportSegFrame(export.SegFrame{
				Points:      frame.Points,
				GTLabels:    frame.GTLabels,
				PredLabels:  frame.PredLabels,
				OutDir:      cfg.OutputDir,
				FrameID:     opts.frameID,
				Palette:     cfg.ColorPalette(),
				IgnoreLabel: cfg.IgnoreLabel,
			})
			if err != nil {
				return err
			}
			log.Info("exported segmentation frame", zap.String("frame", opts.frameID))
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.ignore, "ignore", 0, "drop points whose ground-truth label equals this")
	return cmd
}
