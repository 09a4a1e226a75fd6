// Command detviz exports detection and segmentation results to OBJ files
// for viewing in MeshLab.
//
//	detviz det --frame 000008.json --out vis
//	detviz seg --frame scene0000.json --config detviz.yaml --ignore 20
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
