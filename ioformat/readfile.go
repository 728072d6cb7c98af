package ioformat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// ReadFile opens path and dispatches to ReadDIMACS, ReadMTX, or
// ReadEdgeList by extension (.clq/.col, .mtx, .edges respectively),
// setting the returned graph's Path field to path.
func ReadFile(path string) (*graph.GraphEW[*bitset.Dense], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ReadFile: %w", err)
	}
	defer f.Close()

	var g *graph.GraphEW[*bitset.Dense]
	switch filepath.Ext(path) {
	case ".clq", ".col":
		g, err = ReadDIMACS(f)
	case ".mtx":
		g, err = ReadMTX(f)
	case ".edges":
		g, err = ReadEdgeList(f)
	default:
		return nil, fmt.Errorf("ioformat.ReadFile: %q: %w", path, ErrUnknownExtension)
	}
	if err != nil {
		return nil, err
	}
	g.Path = path
	return g, nil
}
