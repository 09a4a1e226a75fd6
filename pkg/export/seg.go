package export

import (
	"errors"
	"fmt"

	"github.com/chazu/detviz/pkg/palette"
	"github.com/chazu/detviz/pkg/pointcloud"
	"go.uber.org/multierr"
)

// ErrNoPoints is returned when labels are given without the points they
// belong to, so no colored file can be written.
var ErrNoPoints = errors.New("labels without points")

// ErrLabelCount is returned when a label array does not have one entry
// per point.
var ErrLabelCount = errors.New("label count does not match point count")

// SegFrame is one segmentation result. Nil fields are skipped.
type SegFrame struct {
	Points      pointcloud.Cloud
	GTLabels    []int
	PredLabels  []int
	OutDir      string
	FrameID     string
	Palette     palette.Palette
	IgnoreLabel *int // drop points whose ground-truth label equals this
}

// ExportSegFrame writes the raw points plus ground-truth and predicted
// labels as palette-colored points under OutDir/FrameID.
func (e *Exporter) ExportSegFrame(f SegFrame) error {
	points, gt, pred := f.Points, f.GTLabels, f.PredLabels
	if err := checkLabelCounts(points, gt, pred); err != nil {
		return err
	}
	if f.IgnoreLabel != nil && gt != nil {
		points, gt, pred = dropIgnored(points, gt, pred, *f.IgnoreLabel)
	}

	if err := makeFrameDir(f.OutDir, f.FrameID); err != nil {
		return err
	}

	var errs error
	if points != nil {
		errs = multierr.Append(errs, e.writePoints(FramePath(f.OutDir, f.FrameID, "points", FormatOBJ), points))
	}
	if gt != nil {
		errs = multierr.Append(errs, e.writeLabels(FramePath(f.OutDir, f.FrameID, "gt", FormatOBJ), points, gt, f.Palette))
	}
	if pred != nil {
		errs = multierr.Append(errs, e.writeLabels(FramePath(f.OutDir, f.FrameID, "pred", FormatOBJ), points, pred, f.Palette))
	}
	return errs
}

// checkLabelCounts requires every present label array to match the point
// count, or each other when there are no points.
func checkLabelCounts(points pointcloud.Cloud, gt, pred []int) error {
	n := -1
	if points != nil {
		n = points.Len()
	}
	for _, l := range []struct {
		name   string
		labels []int
	}{{"gt", gt}, {"pred", pred}} {
		if l.labels == nil {
			continue
		}
		if n < 0 {
			n = len(l.labels)
			continue
		}
		if len(l.labels) != n {
			return fmt.Errorf("export: %d %s labels for %d points: %w", len(l.labels), l.name, n, ErrLabelCount)
		}
	}
	return nil
}

// dropIgnored filters points, gt and pred with a single mask built from gt.
func dropIgnored(points pointcloud.Cloud, gt, pred []int, ignore int) (pointcloud.Cloud, []int, []int) {
	keep := make([]bool, len(gt))
	kept := 0
	for i, l := range gt {
		keep[i] = l != ignore
		if keep[i] {
			kept++
		}
	}

	if points != nil {
		points = pointcloud.Select(points, keep)
	}
	return points, filterLabels(gt, keep, kept), filterLabels(pred, keep, kept)
}

func filterLabels(labels []int, keep []bool, kept int) []int {
	if labels == nil {
		return nil
	}
	out := make([]int, 0, kept)
	for i, l := range labels {
		if keep[i] {
			out = append(out, l)
		}
	}
	return out
}

func (e *Exporter) writeLabels(path string, points pointcloud.Cloud, labels []int, p palette.Palette) error {
	if points == nil {
		return fmt.Errorf("export: %s: %w", path, ErrNoPoints)
	}
	colors, err := p.Colors(labels)
	if err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	colored, err := pointcloud.Colorize(points, colors)
	if err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return e.writePoints(path, colored)
}
