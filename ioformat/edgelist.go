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

// ReadEdgeList parses the bare edge-list format: one 1-based "u v" pair
// per line, undirected, no header. Since the vertex count is never stated
// up front, the file is scanned twice: once to find the highest vertex
// index, once to build the graph and insert edges.
func ReadEdgeList(r io.Reader) (*graph.GraphEW[*bitset.Dense], error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ReadEdgeList: %w", err)
	}

	type pair struct{ u, v int }
	var pairs []pair
	maxV := -1
	lineNo := 0

	sc := bufio.NewScanner(strings.NewReader(string(buf)))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("ioformat.ReadEdgeList: line %d: %w", lineNo, ErrMalformedLine)
		}
		u1, err1 := strconv.Atoi(fields[0])
		v1, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("ioformat.ReadEdgeList: line %d: %w", lineNo, ErrMalformedLine)
		}
		u, v := u1-1, v1-1
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("ioformat.ReadEdgeList: line %d: %w", lineNo, ErrMalformedLine)
		}
		if u > maxV {
			maxV = u
		}
		if v > maxV {
			maxV = v
		}
		pairs = append(pairs, pair{u, v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat.ReadEdgeList: %w", err)
	}

	g := graph.NewGraphEW(maxV+1, bitset.NewDense)
	for _, p := range pairs {
		g.AddEdge(p.u, p.v)
	}
	return g, nil
}
