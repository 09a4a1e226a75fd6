package pointcloud

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/seqsense/pcgol/pc"
)

// kittiRecordLen is the size of one KITTI velodyne record: x, y, z,
// reflectance as little-endian float32.
const kittiRecordLen = 4 * 4

// ErrInvalidBin is returned when a KITTI .bin stream ends mid-record.
var ErrInvalidBin = errors.New("truncated bin point record")

// ReadPCD decodes a PCD stream (ascii, binary or binary_compressed) and
// returns its xyz fields. Other fields are ignored.
func ReadPCD(r io.Reader) (Positions, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("pointcloud: decoding pcd: %w", err)
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("pointcloud: pcd has no xyz fields: %w", err)
	}

	var pts Positions
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		pts = append(pts, [3]float64{float64(v[0]), float64(v[1]), float64(v[2])})
	}
	return pts, nil
}

// ReadKITTIBin decodes a KITTI velodyne scan. Reflectance is dropped.
func ReadKITTIBin(r io.Reader) (Positions, error) {
	var pts Positions
	rec := make([]byte, kittiRecordLen)
	for {
		_, err := io.ReadFull(r, rec)
		if errors.Is(err, io.EOF) {
			return pts, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("pointcloud: record %d: %w", len(pts), ErrInvalidBin)
		}
		if err != nil {
			return nil, err
		}
		var p [3]float64
		for i := range p {
			p[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[i*4:])))
		}
		pts = append(pts, p)
	}
}
