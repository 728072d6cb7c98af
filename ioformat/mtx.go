package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// ReadMTX parses the Matrix Market coordinate pattern symmetric format: a
// "%%MatrixMarket ..." banner, "%"-prefixed comments, a single dimension
// line "N N M", then M lines of 1-based "u v" pairs, each an undirected
// edge.
func ReadMTX(r io.Reader) (*graph.GraphEW[*bitset.Dense], error) {
	sc := bufio.NewScanner(r)
	var g *graph.GraphEW[*bitset.Dense]
	sawBanner := false
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%%MatrixMarket") {
			sawBanner = true
			continue
		}
		if line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if g == nil {
			if !sawBanner || len(fields) < 3 {
				return nil, fmt.Errorf("ioformat.ReadMTX: line %d: %w", lineNo, ErrBadHeader)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("ioformat.ReadMTX: line %d: bad dimension: %w", lineNo, ErrBadHeader)
			}
			g = graph.NewGraphEW(n, bitset.NewDense)
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("ioformat.ReadMTX: line %d: %w", lineNo, ErrMalformedLine)
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || u < 1 || v < 1 || u > g.NV || v > g.NV {
			return nil, fmt.Errorf("ioformat.ReadMTX: line %d: %w", lineNo, ErrMalformedLine)
		}
		g.AddEdge(u-1, v-1)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat.ReadMTX: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("ioformat.ReadMTX: %w", ErrBadHeader)
	}
	return g, nil
}
