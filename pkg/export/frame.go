package export

import (
	"github.com/chazu/detviz/pkg/bbox"
	"github.com/chazu/detviz/pkg/pointcloud"
	"github.com/chazu/detviz/pkg/tessellate"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DetFrame is one detection result. Nil fields are skipped; a non-nil
// empty box slice still produces a (degenerate) box file.
type DetFrame struct {
	Points    pointcloud.Cloud
	GTBoxes   []bbox.OrientedBox // bottom-center, counter-clockwise heading
	PredBoxes []bbox.OrientedBox // bottom-center, counter-clockwise heading
	OutDir    string
	FrameID   string
	Show      bool
}

// ExportFrame writes the points, ground-truth boxes and predicted boxes of
// f under OutDir/FrameID. Each file is attempted independently; failures
// are combined into the returned error and files already written remain.
func (e *Exporter) ExportFrame(f DetFrame) error {
	log := e.logger.With(zap.String("frame", f.FrameID))

	if f.Show {
		var layers []BoxLayer
		if f.PredBoxes != nil {
			layers = append(layers, BoxLayer{Name: "pred", Boxes: f.PredBoxes})
		}
		if f.GTBoxes != nil {
			gt := GTColor
			layers = append(layers, BoxLayer{Name: "gt", Boxes: f.GTBoxes, Color: &gt})
		}
		e.show(f.FrameID, f.Points, layers)
	}

	if err := makeFrameDir(f.OutDir, f.FrameID); err != nil {
		return err
	}

	var errs error
	if f.Points != nil {
		errs = multierr.Append(errs, e.writePoints(FramePath(f.OutDir, f.FrameID, "points", FormatOBJ), f.Points))
	}
	if f.GTBoxes != nil {
		errs = multierr.Append(errs, e.writeBoxes(log, FramePath(f.OutDir, f.FrameID, "gt", e.format), f.GTBoxes))
	}
	if f.PredBoxes != nil {
		errs = multierr.Append(errs, e.writeBoxes(log, FramePath(f.OutDir, f.FrameID, "pred", e.format), f.PredBoxes))
	}
	return errs
}

// writeBoxes converts boxes to the viewer frame once, meshes them and
// writes the mesh.
func (e *Exporter) writeBoxes(log *zap.Logger, path string, boxes []bbox.OrientedBox) error {
	for _, w := range bbox.Validate(boxes) {
		log.Warn("suspicious box", zap.String("path", path), zap.Stringer("issue", w))
	}
	mesh := tessellate.Boxes(bbox.ToViewerFrame(boxes), e.kernel)
	return e.writeMesh(path, mesh)
}
