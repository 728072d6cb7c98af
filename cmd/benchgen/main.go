// Command benchgen generates a grid of random benchmark graphs, sweeping
// vertex count and edge density, and writes each as a DIMACS file.
//
// Usage:
//
//	benchgen <minSize> <maxSize> <sizeStep> <minDensity> <maxDensity> <densityStep> <repetitions> <outputDir>
//
// All arguments are positional; there are no flags and no environment
// variables, per spec.md §6's "no env vars, no CLI flags in the core" —
// this CLI is the one out-of-scope collaborator that does take
// arguments, and it takes them positionally.
//
// Exit codes: 0 on success, 1 on argument error, 2 on I/O failure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/genutil"
	"github.com/katalvlaran/bitgraph/graph"
	"github.com/katalvlaran/bitgraph/ioformat"
)

const usage = "usage: benchgen <minSize> <maxSize> <sizeStep> <minDensity> <maxDensity> <densityStep> <repetitions> <outputDir>"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "benchgen:", err)
		return 2
	}

	rng := genutil.DefaultRng()
	count := 0
	for size := cfg.minSize; size <= cfg.maxSize; size += cfg.sizeStep {
		for density := cfg.minDensity; density <= cfg.maxDensity; density += cfg.densityStep {
			for rep := 0; rep < cfg.repetitions; rep++ {
				g := randomGraphEW(size, density, rng)
				name := fmt.Sprintf("n%d_d%.3f_r%d.clq", size, density, rep)
				path := filepath.Join(cfg.outputDir, name)

				f, err := os.Create(path)
				if err != nil {
					fmt.Fprintln(os.Stderr, "benchgen:", err)
					return 2
				}
				err = ioformat.WriteDIMACS(f, g)
				closeErr := f.Close()
				if err != nil {
					fmt.Fprintln(os.Stderr, "benchgen:", err)
					return 2
				}
				if closeErr != nil {
					fmt.Fprintln(os.Stderr, "benchgen:", closeErr)
					return 2
				}
				count++
			}
		}
	}

	fmt.Printf("benchgen: wrote %d graphs to %s\n", count, cfg.outputDir)
	return 0
}

type config struct {
	minSize, maxSize, sizeStep  int
	minDensity, maxDensity      float64
	densityStep                 float64
	repetitions                 int
	outputDir                   string
}

// randomGraphEW samples an Erdős–Rényi-style undirected graph directly
// into a GraphEW (rather than via genutil.RandomGraph, which returns a
// plain Ugraph) so the result can be handed straight to
// ioformat.WriteDIMACS.
func randomGraphEW(size int, density float64, rng *genutil.Rng) *graph.GraphEW[*bitset.Dense] {
	g := graph.NewGraphEW(size, bitset.NewDense)
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			if rng.Float64() <= density {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

func parseArgs(args []string) (*config, error) {
	if len(args) != 8 {
		return nil, fmt.Errorf("benchgen: expected 8 arguments, got %d", len(args))
	}

	minSize, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("benchgen: minSize: %w", err)
	}
	maxSize, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("benchgen: maxSize: %w", err)
	}
	sizeStep, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("benchgen: sizeStep: %w", err)
	}
	minDensity, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return nil, fmt.Errorf("benchgen: minDensity: %w", err)
	}
	maxDensity, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return nil, fmt.Errorf("benchgen: maxDensity: %w", err)
	}
	densityStep, err := strconv.ParseFloat(args[5], 64)
	if err != nil {
		return nil, fmt.Errorf("benchgen: densityStep: %w", err)
	}
	repetitions, err := strconv.Atoi(args[6])
	if err != nil {
		return nil, fmt.Errorf("benchgen: repetitions: %w", err)
	}
	outputDir := args[7]

	if minSize < 0 || maxSize < minSize || sizeStep <= 0 {
		return nil, fmt.Errorf("benchgen: invalid size range [%d,%d] step %d", minSize, maxSize, sizeStep)
	}
	if minDensity < 0 || maxDensity > 1 || maxDensity < minDensity || densityStep <= 0 {
		return nil, fmt.Errorf("benchgen: invalid density range [%g,%g] step %g", minDensity, maxDensity, densityStep)
	}
	if repetitions <= 0 {
		return nil, fmt.Errorf("benchgen: repetitions must be positive, got %d", repetitions)
	}
	if outputDir == "" {
		return nil, fmt.Errorf("benchgen: outputDir must not be empty")
	}

	return &config{
		minSize: minSize, maxSize: maxSize, sizeStep: sizeStep,
		minDensity: minDensity, maxDensity: maxDensity, densityStep: densityStep,
		repetitions: repetitions, outputDir: outputDir,
	}, nil
}
