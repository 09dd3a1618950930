package solutions

import (
	"aoc2023"
)

// mirrorRow returns the number of rows above a horizontal mirror whose
// reflection has exactly smudges cell mismatches, or 0 if there is none.
func mirrorRow(g aoc.Grid[byte], smudges int) int {
	size := g.Size()
	for r := 1; r < size.Y; r++ {
		diff := 0
		for a, b := r-1, r; a >= 0 && b < size.Y; a, b = a-1, b+1 {
			for x := 0; x < size.X; x++ {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return r
		}
	}
	return 0
}

// summarize scores a pattern: 100 per row above a horizontal mirror,
// or 1 per column left of a vertical one (found on the transpose).
func summarize(g aoc.Grid[byte], smudges int) int {
	if r := mirrorRow(g, smudges); r > 0 {
		return 100 * r
	}
	return mirrorRow(g.Transpose(), smudges)
}

func summarizeAll(lines []string, smudges int) int {
	sum := 0
	for _, block := range splitBlocks(lines) {
		sum += summarize(parseGrid(block), smudges)
	}
	return sum
}

/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func (s Solver) D13p1() any {
	return summarizeAll(s.Lines(), 0)
}

// want=400
func (s Solver) D13p2() any {
	return summarizeAll(s.Lines(), 1)
}
