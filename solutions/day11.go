package solutions

import (
	"aoc2023"
)

func parseStars(lines []string) []aoc.Pt {
	var stars []aoc.Pt
	for y, l := range lines {
		for x, c := range l {
			if c == '#' {
				stars = append(stars, aoc.Pt{X: x, Y: y})
			}
		}
	}
	return stars
}

// expandStars widens the chart so that every row and column with no
// star counts as factor rows/columns.
func expandStars(stars []aoc.Pt, factor int) []aoc.Pt {
	var maxX, maxY int
	cols := map[int]bool{}
	rows := map[int]bool{}
	for _, s := range stars {
		maxX = max(maxX, s.X)
		maxY = max(maxY, s.Y)
		cols[s.X] = true
		rows[s.Y] = true
	}

	offsets := func(limit int, occupied map[int]bool) []int {
		out := make([]int, limit+1)
		shift := 0
		for i := 0; i <= limit; i++ {
			if !occupied[i] {
				shift += factor - 1
			}
			out[i] = shift
		}
		return out
	}
	colOff := offsets(maxX, cols)
	rowOff := offsets(maxY, rows)

	expanded := make([]aoc.Pt, len(stars))
	for i, s := range stars {
		expanded[i] = aoc.Pt{X: s.X + colOff[s.X], Y: s.Y + rowOff[s.Y]}
	}
	return expanded
}

// pairDistances sums the manhattan distance between every star pair.
func pairDistances(stars []aoc.Pt) int {
	sum := 0
	for i := 0; i < len(stars); i++ {
		for j := i + 1; j < len(stars); j++ {
			sum += stars[i].MDist(stars[j])
		}
	}
	return sum
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s Solver) D11p1() any {
	return pairDistances(expandStars(parseStars(s.Lines()), 2))
}

// want=82000210
func (s Solver) D11p2() any {
	return pairDistances(expandStars(parseStars(s.Lines()), 1000000))
}
