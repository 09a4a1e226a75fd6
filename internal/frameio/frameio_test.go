package frameio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/detviz/pkg/bbox"
	"github.com/chazu/detviz/pkg/pointcloud"
	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	src := `{
		"points": [[0,0,0,255,0,0],[1,1,1,0,255,0]],
		"gt_boxes": [[0,0,0,2,2,2,0]],
		"pred_boxes": [],
		"gt_labels": [1, 2]
	}`
	f, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := f.Points.(*pointcloud.Colored); !ok {
		t.Errorf("points = %T, want *pointcloud.Colored", f.Points)
	}
	want := []bbox.OrientedBox{{Size: [3]float64{2, 2, 2}}}
	if diff := cmp.Diff(want, f.GTBoxes); diff != "" {
		t.Errorf("gt boxes mismatch (-want +got):\n%s", diff)
	}
	if f.PredBoxes == nil || len(f.PredBoxes) != 0 {
		t.Errorf("pred boxes = %#v, want present and empty", f.PredBoxes)
	}
	if f.PredLabels != nil {
		t.Errorf("pred labels = %v, want nil", f.PredLabels)
	}
	if diff := cmp.Diff([]int{1, 2}, f.GTLabels); diff != "" {
		t.Errorf("gt labels mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `{"points": [`},
		{"point width", `{"points": [[1,2]]}`},
		{"box width", `{"gt_boxes": [[1,2,3]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadPoints(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	for _, v := range []float32{1, 2, 3, 0} {
		binary.Write(&buf, binary.LittleEndian, math.Float32bits(v))
	}
	binPath := filepath.Join(dir, "000001.bin")
	if err := os.WriteFile(binPath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadPoints(binPath)
	if err != nil {
		t.Fatalf("LoadPoints(bin): %v", err)
	}
	if c.Len() != 1 || c.Position(0) != [3]float64{1, 2, 3} {
		t.Errorf("bin points = %v", c)
	}

	plyPath := filepath.Join(dir, "cloud.ply")
	if err := os.WriteFile(plyPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPoints(plyPath); !errors.Is(err, ErrUnsupportedPointFile) {
		t.Errorf("err = %v, want ErrUnsupportedPointFile", err)
	}

	if _, err := LoadPoints(filepath.Join(dir, "missing.pcd")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.json")
	if err := os.WriteFile(path, []byte(`{"points": [[1,2,3]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFrame(path)
	if err != nil {
		t.Fatalf("LoadFrame: %v", err)
	}
	if f.Points.Len() != 1 || f.GTBoxes != nil {
		t.Errorf("frame = %+v", f)
	}
}
