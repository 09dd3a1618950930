// Package solutions holds the Advent of Code 2023 solvers, one file per
// day. Solver methods are discovered by aoc.Run via their D{day}p{part}
// names; each method's doc comment carries its sample input and expected
// answer.
package solutions

import (
	"embed"

	"aoc2023"
)

//go:embed *.go
var Source embed.FS

type Solver struct {
	*aoc.Puzzle
}

func New() *Solver {
	return &Solver{}
}

// parseGrid converts lines into a byte grid.
func parseGrid(lines []string) aoc.Grid[byte] {
	g := make(aoc.Grid[byte], len(lines))
	for i, l := range lines {
		g[i] = []byte(l)
	}
	return g
}

// splitBlocks groups lines into blocks separated by blank lines.
func splitBlocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, l := range lines {
		if l == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
