// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx CAD library for box bounds, 4x4 homogeneous
// transforms and STL output.
package sdfx

import (
	"fmt"

	"github.com/chazu/detviz/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

func toVec(a [3]float64) v3.Vec {
	return v3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

// Cuboid creates an origin-centered box. Corner i takes the max side on
// X, Y, Z according to bits 2, 1, 0 of i, matching kernel.CuboidFaces.
func (k *SdfxKernel) Cuboid(size [3]float64) *kernel.Mesh {
	bb := sdf.NewBox3(v3.Vec{}, toVec(size))

	m := &kernel.Mesh{
		Vertices: make([]float64, 0, 8*3),
		Faces:    make([]kernel.Face, 0, len(kernel.CuboidFaces)),
	}
	for i := 0; i < 8; i++ {
		v := bb.Min
		if i&4 != 0 {
			v.X = bb.Max.X
		}
		if i&2 != 0 {
			v.Y = bb.Max.Y
		}
		if i&1 != 0 {
			v.Z = bb.Max.Z
		}
		m.Vertices = append(m.Vertices, v.X, v.Y, v.Z)
	}
	for _, f := range kernel.CuboidFaces {
		m.Faces = append(m.Faces, append(kernel.Face(nil), f...))
	}
	return m
}

// Place applies translate(center) * rotateZ(heading) to every vertex.
func (k *SdfxKernel) Place(m *kernel.Mesh, heading float64, center [3]float64) *kernel.Mesh {
	xf := sdf.Translate3d(toVec(center)).Mul(sdf.RotateZ(heading))

	out := &kernel.Mesh{
		Vertices: make([]float64, 0, len(m.Vertices)),
		Faces:    make([]kernel.Face, len(m.Faces)),
	}
	for i := 0; i < m.VertexCount(); i++ {
		p := xf.MulPosition(toVec(m.Vertex(i)))
		out.Vertices = append(out.Vertices, p.X, p.Y, p.Z)
	}
	for i, f := range m.Faces {
		out.Faces[i] = append(kernel.Face(nil), f...)
	}
	return out
}

// ToTriangles converts a mesh into sdfx triangles, fan-splitting polygons.
func ToTriangles(m *kernel.Mesh) []*sdf.Triangle3 {
	tris := m.Triangles()
	out := make([]*sdf.Triangle3, 0, len(tris))
	for _, t := range tris {
		out = append(out, &sdf.Triangle3{
			toVec(m.Vertex(int(t[0]))),
			toVec(m.Vertex(int(t[1]))),
			toVec(m.Vertex(int(t[2]))),
		})
	}
	return out
}

// SaveSTL writes the mesh as a binary STL file at path.
func SaveSTL(path string, m *kernel.Mesh) error {
	if err := render.SaveSTL(path, ToTriangles(m)); err != nil {
		return fmt.Errorf("sdfx: writing stl %s: %w", path, err)
	}
	return nil
}
