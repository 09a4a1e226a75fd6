// Package pointcloud holds point clouds as a closed variant: plain positions
// or positions with per-point RGB colors. The variant is picked once, when
// raw rows enter the system, so writers never branch on column counts.
package pointcloud

import (
	"errors"
	"fmt"
)

// ErrColumnCount is returned when raw rows are neither xyz nor xyz+rgb.
var ErrColumnCount = errors.New("point rows must have 3 or 6 columns")

// RGB is a color with integer channels, nominally 0..255.
type RGB [3]int

// Cloud is either Positions or *Colored.
type Cloud interface {
	// Len returns the number of points.
	Len() int
	// Position returns the xyz of point i.
	Position(i int) [3]float64

	isCloud()
}

// Positions is a cloud without color.
type Positions [][3]float64

func (p Positions) Len() int                  { return len(p) }
func (p Positions) Position(i int) [3]float64 { return p[i] }
func (Positions) isCloud()                    {}

// Colored is a cloud where every point carries an RGB color.
// len(Colors) always equals len(Points).
type Colored struct {
	Points Positions
	Colors []RGB
}

func (c *Colored) Len() int                  { return len(c.Points) }
func (c *Colored) Position(i int) [3]float64 { return c.Points[i] }
func (*Colored) isCloud()                    {}

// FromRows converts an N×3 or N×6 array into a Cloud. Color channels are
// truncated toward zero. An empty input yields empty Positions.
func FromRows(rows [][]float64) (Cloud, error) {
	if len(rows) == 0 {
		return Positions{}, nil
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("pointcloud: row %d has %d columns, row 0 has %d: %w", i, len(r), width, ErrColumnCount)
		}
	}

	switch width {
	case 3:
		pts := make(Positions, len(rows))
		for i, r := range rows {
			pts[i] = [3]float64{r[0], r[1], r[2]}
		}
		return pts, nil
	case 6:
		c := &Colored{
			Points: make(Positions, len(rows)),
			Colors: make([]RGB, len(rows)),
		}
		for i, r := range rows {
			c.Points[i] = [3]float64{r[0], r[1], r[2]}
			c.Colors[i] = RGB{int(r[3]), int(r[4]), int(r[5])}
		}
		return c, nil
	default:
		return nil, fmt.Errorf("pointcloud: got %d columns: %w", width, ErrColumnCount)
	}
}

// XYZ returns the positions of c with any color dropped.
func XYZ(c Cloud) Positions {
	switch v := c.(type) {
	case Positions:
		return v
	case *Colored:
		return v.Points
	}
	return nil
}

// Select keeps the points whose keep entry is true, preserving order and
// variant. keep must have c.Len() entries.
func Select(c Cloud, keep []bool) Cloud {
	switch v := c.(type) {
	case Positions:
		out := make(Positions, 0, len(v))
		for i, p := range v {
			if keep[i] {
				out = append(out, p)
			}
		}
		return out
	case *Colored:
		out := &Colored{
			Points: make(Positions, 0, len(v.Points)),
			Colors: make([]RGB, 0, len(v.Colors)),
		}
		for i := range v.Points {
			if keep[i] {
				out.Points = append(out.Points, v.Points[i])
				out.Colors = append(out.Colors, v.Colors[i])
			}
		}
		return out
	}
	return nil
}

// Colorize pairs the positions of c with the given colors.
func Colorize(c Cloud, colors []RGB) (*Colored, error) {
	if c.Len() != len(colors) {
		return nil, fmt.Errorf("pointcloud: %d colors for %d points", len(colors), c.Len())
	}
	pts := XYZ(c)
	return &Colored{
		Points: append(Positions(nil), pts...),
		Colors: append([]RGB(nil), colors...),
	}, nil
}
