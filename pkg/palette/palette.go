// Package palette maps integer segmentation labels to display colors.
package palette

import (
	"errors"
	"fmt"

	"github.com/chazu/detviz/pkg/pointcloud"
)

// ErrLabelOutOfRange is returned for labels with no palette entry.
var ErrLabelOutOfRange = errors.New("label outside palette")

// Palette is indexed by label.
type Palette []pointcloud.RGB

// FromRows builds a palette from K×3 integer rows.
func FromRows(rows [][3]int) Palette {
	p := make(Palette, len(rows))
	for i, r := range rows {
		p[i] = pointcloud.RGB(r)
	}
	return p
}

// Lookup returns the color of label.
func (p Palette) Lookup(label int) (pointcloud.RGB, error) {
	if label < 0 || label >= len(p) {
		return pointcloud.RGB{}, fmt.Errorf("palette: label %d with %d entries: %w", label, len(p), ErrLabelOutOfRange)
	}
	return p[label], nil
}

// Colors maps every label to its color, in order.
func (p Palette) Colors(labels []int) ([]pointcloud.RGB, error) {
	out := make([]pointcloud.RGB, len(labels))
	for i, l := range labels {
		c, err := p.Lookup(l)
		if err != nil {
			return nil, fmt.Errorf("palette: point %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}
