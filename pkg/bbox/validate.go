package bbox

import (
	"fmt"
	"math"
)

// Warning describes a box that will still be meshed but is probably wrong.
type Warning struct {
	Index   int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("box %d: %s", w.Index, w.Message)
}

// Validate reports boxes with non-positive or non-finite extents and
// non-finite centers or headings. Such boxes are never rejected; the mesh
// builder produces a degenerate or inverted cuboid for them.
func Validate(boxes []OrientedBox) []Warning {
	var warnings []Warning
	axes := [3]string{"X", "Y", "Z"}

	for i, b := range boxes {
		for a, s := range b.Size {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				warnings = append(warnings, Warning{
					Index:   i,
					Message: fmt.Sprintf("extent %s is %v, must be finite", axes[a], s),
				})
				continue
			}
			if s <= 0 {
				warnings = append(warnings, Warning{
					Index:   i,
					Message: fmt.Sprintf("extent %s is %.4f, must be positive", axes[a], s),
				})
			}
		}
		for a, c := range b.Center {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				warnings = append(warnings, Warning{
					Index:   i,
					Message: fmt.Sprintf("center %s is %v", axes[a], c),
				})
			}
		}
		if math.IsNaN(b.Heading) || math.IsInf(b.Heading, 0) {
			warnings = append(warnings, Warning{
				Index:   i,
				Message: fmt.Sprintf("heading is %v", b.Heading),
			})
		}
	}

	return warnings
}
