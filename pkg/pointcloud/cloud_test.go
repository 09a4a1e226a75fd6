package pointcloud

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromRows(t *testing.T) {
	t.Run("xyz", func(t *testing.T) {
		c, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
		if err != nil {
			t.Fatalf("FromRows: %v", err)
		}
		p, ok := c.(Positions)
		if !ok {
			t.Fatalf("got %T, want Positions", c)
		}
		if diff := cmp.Diff(Positions{{1, 2, 3}, {4, 5, 6}}, p); diff != "" {
			t.Errorf("positions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("xyzrgb truncates color", func(t *testing.T) {
		c, err := FromRows([][]float64{{0, 0, 0, 12.9, 255.0, 0.4}})
		if err != nil {
			t.Fatalf("FromRows: %v", err)
		}
		col, ok := c.(*Colored)
		if !ok {
			t.Fatalf("got %T, want *Colored", c)
		}
		if col.Colors[0] != (RGB{12, 255, 0}) {
			t.Errorf("color = %v, want [12 255 0]", col.Colors[0])
		}
	})

	t.Run("empty", func(t *testing.T) {
		c, err := FromRows(nil)
		if err != nil {
			t.Fatalf("FromRows: %v", err)
		}
		if c.Len() != 0 {
			t.Errorf("Len() = %d, want 0", c.Len())
		}
	})

	bad := []struct {
		name string
		rows [][]float64
	}{
		{"four columns", [][]float64{{1, 2, 3, 4}}},
		{"ragged", [][]float64{{1, 2, 3}, {1, 2, 3, 4, 5, 6}}},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRows(tt.rows); !errors.Is(err, ErrColumnCount) {
				t.Errorf("err = %v, want ErrColumnCount", err)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	keep := []bool{true, false, true}

	pos := Positions{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	got := Select(pos, keep)
	if diff := cmp.Diff(Positions{{0, 0, 0}, {2, 2, 2}}, got); diff != "" {
		t.Errorf("Select(Positions) mismatch (-want +got):\n%s", diff)
	}

	col := &Colored{Points: pos, Colors: []RGB{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	want := &Colored{Points: Positions{{0, 0, 0}, {2, 2, 2}}, Colors: []RGB{{1, 0, 0}, {0, 0, 1}}}
	if diff := cmp.Diff(want, Select(col, keep)); diff != "" {
		t.Errorf("Select(Colored) mismatch (-want +got):\n%s", diff)
	}
}

func TestColorize(t *testing.T) {
	src := &Colored{Points: Positions{{1, 2, 3}}, Colors: []RGB{{9, 9, 9}}}
	got, err := Colorize(src, []RGB{{1, 2, 3}})
	if err != nil {
		t.Fatalf("Colorize: %v", err)
	}
	if got.Colors[0] != (RGB{1, 2, 3}) {
		t.Errorf("color = %v, want [1 2 3]", got.Colors[0])
	}
	if src.Colors[0] != (RGB{9, 9, 9}) {
		t.Error("Colorize mutated its input")
	}

	if _, err := Colorize(src, nil); err == nil {
		t.Error("expected error for color count mismatch")
	}
}

func TestReadKITTIBin(t *testing.T) {
	var buf bytes.Buffer
	for _, v := range []float32{1, 2, 3, 0.5, -1, -2, -3, 0.25} {
		binary.Write(&buf, binary.LittleEndian, math.Float32bits(v))
	}
	pts, err := ReadKITTIBin(&buf)
	if err != nil {
		t.Fatalf("ReadKITTIBin: %v", err)
	}
	if diff := cmp.Diff(Positions{{1, 2, 3}, {-1, -2, -3}}, pts); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadKITTIBin(bytes.NewReader(make([]byte, 10))); !errors.Is(err, ErrInvalidBin) {
		t.Errorf("err = %v, want ErrInvalidBin", err)
	}
}

func TestReadPCDAscii(t *testing.T) {
	src := strings.Join([]string{
		"# .PCD v0.7 - Point Cloud Data file format",
		"VERSION 0.7",
		"FIELDS x y z",
		"SIZE 4 4 4",
		"TYPE F F F",
		"COUNT 1 1 1",
		"WIDTH 2",
		"HEIGHT 1",
		"VIEWPOINT 0 0 0 1 0 0 0",
		"POINTS 2",
		"DATA ascii",
		"1 2 3",
		"4 5 6",
		"",
	}, "\n")
	pts, err := ReadPCD(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadPCD: %v", err)
	}
	if diff := cmp.Diff(Positions{{1, 2, 3}, {4, 5, 6}}, pts); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}
