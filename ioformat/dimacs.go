package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// ReadDIMACS parses the DIMACS clique/coloring format (.clq, .col): "c"
// lines are comments, a single "p edge N M" line announces the vertex and
// edge counts, "e u v" lines declare 1-based undirected edges, "n v w"
// lines assign vertex v (1-based) weight w, and the extended "e u v w"
// form stores w as that edge's weight — except when u == v, where the
// line is a self-loop-as-vertex-weight convention and w is applied to
// VertexWeight(u-1) instead of inserting an edge, grounded on
// original_source/graph/formats/dimacs_reader.h's header-scanning loop
// and graph_formats.cpp's documented extended conventions.
func ReadDIMACS(r io.Reader) (*graph.GraphEW[*bitset.Dense], error) {
	sc := bufio.NewScanner(r)
	var g *graph.GraphEW[*bitset.Dense]
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if g != nil || len(fields) < 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: %w", lineNo, ErrBadHeader)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: bad vertex count: %w", lineNo, ErrBadHeader)
			}
			g = graph.NewGraphEW(n, bitset.NewDense)
		case "e":
			if g == nil {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: edge before header: %w", lineNo, ErrBadHeader)
			}
			u, v, w, hasW, err := parseEdgeLine(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: %w", lineNo, err)
			}
			if u < 0 || v < 0 || u >= g.NV || v >= g.NV {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: vertex out of range: %w", lineNo, ErrMalformedLine)
			}
			if u == v {
				if hasW {
					g.SetVertexWeight(u, w)
				}
				continue
			}
			g.AddEdge(u, v)
			if hasW {
				g.SetEdgeWeight(u, v, w)
			}
		case "n":
			if g == nil {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: vertex weight before header: %w", lineNo, ErrBadHeader)
			}
			v, w, err := parseVertexWeightLine(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: %w", lineNo, err)
			}
			if v < 0 || v >= g.NV {
				return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: vertex out of range: %w", lineNo, ErrMalformedLine)
			}
			g.SetVertexWeight(v, w)
		default:
			return nil, fmt.Errorf("ioformat.ReadDIMACS: line %d: unknown record %q: %w", lineNo, fields[0], ErrMalformedLine)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat.ReadDIMACS: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("ioformat.ReadDIMACS: %w", ErrBadHeader)
	}
	return g, nil
}

// parseEdgeLine parses the 1-based operands of an "e" record, converting
// to 0-based indices. The optional third token is the extended edge
// weight.
func parseEdgeLine(tok []string) (u, v int, w int64, hasW bool, err error) {
	if len(tok) < 2 {
		return 0, 0, 0, false, ErrMalformedLine
	}
	u1, err1 := strconv.Atoi(tok[0])
	v1, err2 := strconv.Atoi(tok[1])
	if err1 != nil || err2 != nil {
		return 0, 0, 0, false, ErrMalformedLine
	}
	u, v = u1-1, v1-1
	if len(tok) >= 3 {
		w64, err3 := strconv.ParseInt(tok[2], 10, 64)
		if err3 != nil {
			return 0, 0, 0, false, ErrMalformedLine
		}
		w, hasW = w64, true
	}
	return u, v, w, hasW, nil
}

// parseVertexWeightLine parses the 1-based operands of an "n" record.
func parseVertexWeightLine(tok []string) (v int, w int64, err error) {
	if len(tok) < 2 {
		return 0, 0, ErrMalformedLine
	}
	v1, err1 := strconv.Atoi(tok[0])
	w64, err2 := strconv.ParseInt(tok[1], 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformedLine
	}
	return v1 - 1, w64, nil
}

// WriteDIMACS emits g in DIMACS clique format: a leading timestamp
// comment, an optional "c <name>" line, the "p edge N M" header, then
// every edge once in ascending (u,v) order with u < v, 1-based.
func WriteDIMACS(w io.Writer, g *graph.GraphEW[*bitset.Dense]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c generated %s\n", time.Now().UTC().Format(time.RFC3339))
	if g.Name != "" {
		fmt.Fprintf(bw, "c %s\n", g.Name)
	}
	fmt.Fprintf(bw, "p edge %d %d\n", g.NV, g.NumEdges(true))
	for u := 0; u < g.NV; u++ {
		for v := u + 1; v < g.NV; v++ {
			if g.IsEdge(u, v) {
				fmt.Fprintf(bw, "e %d %d\n", u+1, v+1)
			}
		}
	}
	return bw.Flush()
}
