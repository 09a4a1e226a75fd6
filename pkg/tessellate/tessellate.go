// Package tessellate turns oriented boxes into a single polygon mesh using
// a geometry kernel.
package tessellate

import (
	"github.com/chazu/detviz/pkg/bbox"
	"github.com/chazu/detviz/pkg/kernel"
)

// Box meshes one oriented box: a cuboid of its size, rotated about Z by
// its heading, then moved to its center.
func Box(b bbox.OrientedBox, k kernel.Kernel) *kernel.Mesh {
	return k.Place(k.Cuboid(b.Size), b.Heading, b.Center)
}

// Boxes meshes every box and concatenates the results in input order,
// giving 8 vertices and 6 quads per box. An empty list is meshed as a
// single all-zero box so the output file is never empty.
func Boxes(boxes []bbox.OrientedBox, k kernel.Kernel) *kernel.Mesh {
	if len(boxes) == 0 {
		boxes = []bbox.OrientedBox{{}}
	}

	meshes := make([]*kernel.Mesh, 0, len(boxes))
	for _, b := range boxes {
		meshes = append(meshes, Box(b, k))
	}
	return kernel.Concat(meshes...)
}
