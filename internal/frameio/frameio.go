// Package frameio loads frames handed over by the inference pipeline: a
// JSON document of raw arrays, optionally with points in a separate PCD
// or KITTI .bin file.
package frameio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/detviz/pkg/bbox"
	"github.com/chazu/detviz/pkg/pointcloud"
)

// ErrUnsupportedPointFile is returned for point files other than .pcd/.bin.
var ErrUnsupportedPointFile = errors.New("unsupported point file type")

// Raw mirrors the JSON document. Absent keys decode to nil.
type Raw struct {
	Points     [][]float64 `json:"points"`
	GTBoxes    [][]float64 `json:"gt_boxes"`
	PredBoxes  [][]float64 `json:"pred_boxes"`
	GTLabels   []int       `json:"gt_labels"`
	PredLabels []int       `json:"pred_labels"`
}

// Frame is a decoded frame. Nil fields were absent.
type Frame struct {
	Points     pointcloud.Cloud
	GTBoxes    []bbox.OrientedBox
	PredBoxes  []bbox.OrientedBox
	GTLabels   []int
	PredLabels []int
}

// Decode reads a JSON frame.
func Decode(r io.Reader) (*Frame, error) {
	var raw Raw
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("frameio: decoding frame: %w", err)
	}
	return raw.Frame()
}

// Frame converts raw arrays, picking the point variant once.
func (raw *Raw) Frame() (*Frame, error) {
	f := &Frame{
		GTLabels:   raw.GTLabels,
		PredLabels: raw.PredLabels,
	}
	if raw.Points != nil {
		c, err := pointcloud.FromRows(raw.Points)
		if err != nil {
			return nil, fmt.Errorf("frameio: points: %w", err)
		}
		f.Points = c
	}
	var err error
	if f.GTBoxes, err = bbox.FromRows(raw.GTBoxes); err != nil {
		return nil, fmt.Errorf("frameio: gt_boxes: %w", err)
	}
	if f.PredBoxes, err = bbox.FromRows(raw.PredBoxes); err != nil {
		return nil, fmt.Errorf("frameio: pred_boxes: %w", err)
	}
	return f, nil
}

// LoadFrame reads a JSON frame from path.
func LoadFrame(path string) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("frameio: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// LoadPoints reads a point file, choosing the decoder by extension.
func LoadPoints(path string) (pointcloud.Cloud, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("frameio: %w", err)
	}
	defer fh.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcd":
		return pointcloud.ReadPCD(fh)
	case ".bin":
		return pointcloud.ReadKITTIBin(fh)
	default:
		return nil, fmt.Errorf("frameio: %s: %w", path, ErrUnsupportedPointFile)
	}
}
