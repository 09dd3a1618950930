package solutions

import (
	"strings"

	"aoc2023"
)

func parseHistories(lines []string) [][]int {
	rows := make([][]int, len(lines))
	for i, l := range lines {
		rows[i] = aoc.Ints(strings.Fields(l)...)
	}
	return rows
}

func extrapolatedSum(rows [][]int, forward bool) int {
	return aoc.ParallelMapFold(rows,
		func(row []int) int { return aoc.Extrapolate(row, forward) },
		func(total, v int) int { return total + v },
		0)
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s Solver) D9p1() any {
	return extrapolatedSum(parseHistories(s.Lines()), true)
}

// want=2
func (s Solver) D9p2() any {
	return extrapolatedSum(parseHistories(s.Lines()), false)
}
