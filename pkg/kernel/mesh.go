package kernel

// Mesh is a polygon mesh used as an intermediate form before writing.
// Vertices is flat with 3 floats per vertex (x,y,z). Each face lists
// 0-based vertex indices in counter-clockwise order seen from outside.
type Mesh struct {
	Vertices []float64 // [x0,y0,z0, x1,y1,z1, ...]
	Faces    []Face
}

// Face is an ordered polygon, a triangle or a quad.
type Face []uint32

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount returns the number of triangles after fan triangulation.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) [3]float64 {
	return [3]float64{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
}

// Triangles returns the faces fan-triangulated around their first vertex.
func (m *Mesh) Triangles() [][3]uint32 {
	tris := make([][3]uint32, 0, m.TriangleCount())
	for _, f := range m.Faces {
		for i := 1; i+1 < len(f); i++ {
			tris = append(tris, [3]uint32{f[0], f[i], f[i+1]})
		}
	}
	return tris
}

// Concat appends meshes into one. Face indices are offset by the number of
// vertices before them; coincident vertices are kept as-is.
func Concat(meshes ...*Mesh) *Mesh {
	var nv, nf int
	for _, m := range meshes {
		nv += len(m.Vertices)
		nf += len(m.Faces)
	}
	out := &Mesh{
		Vertices: make([]float64, 0, nv),
		Faces:    make([]Face, 0, nf),
	}
	for _, m := range meshes {
		offset := uint32(out.VertexCount())
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			shifted := make(Face, len(f))
			for i, idx := range f {
				shifted[i] = idx + offset
			}
			out.Faces = append(out.Faces, shifted)
		}
	}
	return out
}
