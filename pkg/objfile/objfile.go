// Package objfile writes point clouds and polygon meshes as Wavefront OBJ
// text, the format MeshLab and most generic viewers open directly.
//
// Point files contain only vertex lines, optionally with an integer RGB
// triple per vertex. Mesh files contain vertex lines followed by face lines
// with 1-based indices.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chazu/detviz/pkg/kernel"
	"github.com/chazu/detviz/pkg/pointcloud"
)

// WritePoints writes one vertex line per point, in order.
func WritePoints(w io.Writer, c pointcloud.Cloud) error {
	bw := bufio.NewWriter(w)
	switch v := c.(type) {
	case pointcloud.Positions:
		for _, p := range v {
			fmt.Fprintf(bw, "v %f %f %f\n", p[0], p[1], p[2])
		}
	case *pointcloud.Colored:
		for i, p := range v.Points {
			col := v.Colors[i]
			fmt.Fprintf(bw, "v %f %f %f %d %d %d\n", p[0], p[1], p[2], col[0], col[1], col[2])
		}
	default:
		return fmt.Errorf("objfile: unsupported cloud type %T", c)
	}
	return bw.Flush()
}

// WriteMesh writes all vertices, then all faces.
func WriteMesh(w io.Writer, m *kernel.Mesh) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		fmt.Fprintf(bw, "v %f %f %f\n", v[0], v[1], v[2])
	}
	buf := make([]byte, 0, 64)
	for _, f := range m.Faces {
		buf = append(buf[:0], 'f')
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(idx)+1, 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return bw.Flush()
}

// WritePointsFile creates or truncates path and writes c into it.
func WritePointsFile(path string, c pointcloud.Cloud) error {
	return writeFile(path, func(w io.Writer) error { return WritePoints(w, c) })
}

// WriteMeshFile creates or truncates path and writes m into it.
func WriteMeshFile(path string, m *kernel.Mesh) error {
	return writeFile(path, func(w io.Writer) error { return WriteMesh(w, m) })
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("objfile: closing %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("objfile: writing %s: %w", path, err)
	}
	return nil
}
