// Package export writes per-frame perception results to disk in a layout
// MeshLab can open directly:
//
//	outDir/frameID/frameID_points.obj
//	outDir/frameID/frameID_gt.obj
//	outDir/frameID/frameID_pred.obj
//
// Detection frames carry boxes; segmentation frames carry per-point labels
// that are rendered as colored points.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazu/detviz/pkg/kernel"
	"github.com/chazu/detviz/pkg/kernel/sdfx"
	"github.com/chazu/detviz/pkg/objfile"
	"github.com/chazu/detviz/pkg/pointcloud"
	"go.uber.org/zap"
)

// Format selects the file format for box meshes. Points are always OBJ.
type Format string

const (
	FormatOBJ Format = "obj"
	FormatSTL Format = "stl"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown mesh format")

// ParseFormat accepts "obj" or "stl". The empty string means OBJ.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatOBJ:
		return FormatOBJ, nil
	case FormatSTL:
		return FormatSTL, nil
	}
	return "", fmt.Errorf("export: %q: %w", s, ErrUnknownFormat)
}

// Exporter holds the collaborators shared by frame exports. It keeps no
// per-frame state, so one Exporter may serve concurrent exports as long as
// their output paths differ.
type Exporter struct {
	kernel kernel.Kernel
	viewer Viewer
	logger *zap.Logger
	format Format
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithKernel replaces the default sdfx kernel.
func WithKernel(k kernel.Kernel) Option {
	return func(e *Exporter) { e.kernel = k }
}

// WithViewer sets the viewer used when a frame asks to be shown.
func WithViewer(v Viewer) Option {
	return func(e *Exporter) { e.viewer = v }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) { e.logger = l }
}

// WithFormat sets the box mesh format.
func WithFormat(f Format) Option {
	return func(e *Exporter) { e.format = f }
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		kernel: sdfx.New(),
		logger: zap.NewNop(),
		format: FormatOBJ,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FramePath returns outDir/frameID/frameID_suffix.ext.
func FramePath(outDir, frameID, suffix string, ext Format) string {
	return filepath.Join(outDir, frameID, fmt.Sprintf("%s_%s.%s", frameID, suffix, ext))
}

func makeFrameDir(outDir, frameID string) error {
	dir := filepath.Join(outDir, frameID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: creating %s: %w", dir, err)
	}
	return nil
}

func (e *Exporter) writePoints(path string, c pointcloud.Cloud) error {
	if err := objfile.WritePointsFile(path, c); err != nil {
		return err
	}
	e.logger.Debug("wrote points", zap.String("path", path), zap.Int("points", c.Len()))
	return nil
}

func (e *Exporter) writeMesh(path string, m *kernel.Mesh) error {
	var err error
	switch e.format {
	case FormatSTL:
		err = sdfx.SaveSTL(path, m)
	default:
		err = objfile.WriteMeshFile(path, m)
	}
	if err != nil {
		return err
	}
	e.logger.Debug("wrote mesh",
		zap.String("path", path),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()),
	)
	return nil
}
