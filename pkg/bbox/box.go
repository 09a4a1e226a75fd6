// Package bbox defines oriented 3D bounding boxes as produced by detectors:
// a center, three extents and a heading about the vertical axis.
package bbox

import (
	"errors"
	"fmt"
)

// ErrBoxWidth is returned when a raw box row does not have 7 values.
var ErrBoxWidth = errors.New("box rows must have 7 columns")

// OrientedBox is a cuboid rotated about Z.
type OrientedBox struct {
	Center  [3]float64
	Size    [3]float64 // dx, dy, dz
	Heading float64    // radians, counter-clockwise positive
}

// FromRow reads (cx, cy, cz, dx, dy, dz, heading).
func FromRow(r []float64) (OrientedBox, error) {
	if len(r) != 7 {
		return OrientedBox{}, fmt.Errorf("bbox: got %d columns: %w", len(r), ErrBoxWidth)
	}
	return OrientedBox{
		Center:  [3]float64{r[0], r[1], r[2]},
		Size:    [3]float64{r[3], r[4], r[5]},
		Heading: r[6],
	}, nil
}

// FromRows converts an M×7 array. A nil input returns nil so that callers
// can keep "absent" distinct from "present but empty".
func FromRows(rows [][]float64) ([]OrientedBox, error) {
	if rows == nil {
		return nil, nil
	}
	boxes := make([]OrientedBox, len(rows))
	for i, r := range rows {
		b, err := FromRow(r)
		if err != nil {
			return nil, fmt.Errorf("bbox: row %d: %w", i, err)
		}
		boxes[i] = b
	}
	return boxes, nil
}

// Row returns the box as (cx, cy, cz, dx, dy, dz, heading).
func (b OrientedBox) Row() []float64 {
	return []float64{b.Center[0], b.Center[1], b.Center[2], b.Size[0], b.Size[1], b.Size[2], b.Heading}
}

// ToViewerFrame converts detector boxes to the convention mesh viewers
// expect. Input centers sit on the box bottom and headings are
// counter-clockwise positive; the result has geometric centers and
// clockwise-positive headings. The input slice is left untouched.
func ToViewerFrame(boxes []OrientedBox) []OrientedBox {
	if boxes == nil {
		return nil
	}
	out := make([]OrientedBox, len(boxes))
	for i, b := range boxes {
		b.Center[2] += b.Size[2] / 2
		b.Heading = -b.Heading
		out[i] = b
	}
	return out
}
