package export

import (
	"fmt"

	"github.com/chazu/detviz/pkg/bbox"
	"github.com/chazu/detviz/pkg/pointcloud"
	"go.uber.org/zap"
)

// GTColor is the color ground-truth boxes are shown in.
var GTColor = pointcloud.RGB{0, 0, 255}

// BoxLayer is a set of boxes drawn in one color. A nil Color means the
// viewer's default.
type BoxLayer struct {
	Name  string
	Boxes []bbox.OrientedBox
	Color *pointcloud.RGB
}

// Viewer displays a frame interactively. Implementations live outside this
// module; LogViewer is a headless stand-in.
type Viewer interface {
	Show(points pointcloud.Cloud, layers ...BoxLayer) error
}

// show calls the viewer and turns any error or panic into a warning so
// file export always proceeds.
func (e *Exporter) show(frameID string, points pointcloud.Cloud, layers []BoxLayer) {
	if e.viewer == nil {
		e.logger.Warn("display requested but no viewer configured", zap.String("frame", frameID))
		return
	}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("viewer panic: %v", r)
			}
		}()
		return e.viewer.Show(points, layers...)
	}()
	if err != nil {
		e.logger.Warn("viewer failed", zap.String("frame", frameID), zap.Error(err))
	}
}

// LogViewer "shows" a frame by logging what would be drawn. Individual
// boxes are logged at debug level as (cx, cy, cz, dx, dy, dz, heading).
type LogViewer struct {
	Logger *zap.Logger
}

// Show implements Viewer.
func (v LogViewer) Show(points pointcloud.Cloud, layers ...BoxLayer) error {
	fields := []zap.Field{}
	if points != nil {
		fields = append(fields, zap.Int("points", points.Len()))
	}
	for _, l := range layers {
		color := "default"
		if l.Color != nil {
			color = fmt.Sprintf("rgb(%d,%d,%d)", l.Color[0], l.Color[1], l.Color[2])
		}
		fields = append(fields, zap.String(l.Name, fmt.Sprintf("%d boxes, %s", len(l.Boxes), color)))
		for i, b := range l.Boxes {
			v.Logger.Debug("box", zap.String("layer", l.Name), zap.Int("index", i), zap.Float64s("row", b.Row()))
		}
	}
	v.Logger.Info("show frame", fields...)
	return nil
}
