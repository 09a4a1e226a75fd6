// Package kernel defines the abstract geometry kernel used to turn boxes
// into meshes. The sdfx package provides the implementation; the
// abstraction keeps mesh assembly independent of the matrix library.
package kernel

// Kernel builds and places cuboid meshes.
type Kernel interface {
	// Cuboid returns an axis-aligned box centered at the origin with the
	// given side lengths: 8 vertices and 6 quad faces. Non-positive sizes
	// yield a degenerate or inverted box.
	Cuboid(size [3]float64) *Mesh

	// Place rotates m about Z by heading (radians, X toward Y) and then
	// translates it by center. m is not modified.
	Place(m *Mesh, heading float64, center [3]float64) *Mesh
}

// CuboidFaces lists the six quads of a cuboid whose vertex i has
// x = bit 2 of i, y = bit 1, z = bit 0 (0 = min, 1 = max side).
// Each quad winds counter-clockwise seen from outside.
var CuboidFaces = [6]Face{
	{0, 1, 3, 2}, // -X
	{4, 6, 7, 5}, // +X
	{0, 4, 5, 1}, // -Y
	{2, 3, 7, 6}, // +Y
	{0, 2, 6, 4}, // -Z
	{1, 5, 7, 3}, // +Z
}
