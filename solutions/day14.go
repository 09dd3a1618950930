package solutions

import (
	"tailscale.com/util/deephash"

	"aoc2023"
)

// tilt rolls every round rock as far in dir as it will go. Cells are
// visited destination-side first so each rock settles in one pass.
func tilt(g aoc.Grid[byte], dir aoc.Direction) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			if dir == aoc.Down {
				p.Y = size.Y - 1 - y
			}
			if dir == aoc.Right {
				p.X = size.X - 1 - x
			}
			if g.At(p) != 'O' {
				continue
			}
			dest := p
			for {
				next, ok := g.Move(aoc.Path{Pt: dest, Dir: dir})
				if !ok || g.At(next.Pt) != '.' {
					break
				}
				dest = next.Pt
			}
			if dest != p {
				g.Set(p, '.')
				g.Set(dest, 'O')
			}
		}
	}
}

func spinCycle(g aoc.Grid[byte]) {
	for _, dir := range []aoc.Direction{aoc.Up, aoc.Left, aoc.Down, aoc.Right} {
		tilt(g, dir)
	}
}

func northLoad(g aoc.Grid[byte]) int {
	size := g.Size()
	load := 0
	for y, row := range g {
		for _, c := range row {
			if c == 'O' {
				load += size.Y - y
			}
		}
	}
	return load
}

// loadAfter spins the platform until the grid state repeats, then
// projects the north load at the requested cycle count.
func loadAfter(g aoc.Grid[byte], cycles int) int {
	seen := map[deephash.Sum]int{g.Hash(): 0}
	loads := []int{northLoad(g)}
	for i := 1; ; i++ {
		spinCycle(g)
		loads = append(loads, northLoad(g))
		h := g.Hash()
		if first, ok := seen[h]; ok {
			loop := i - first
			return loads[first+(cycles-first)%loop]
		}
		seen[h] = i
	}
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s Solver) D14p1() any {
	g := parseGrid(s.Lines())
	tilt(g, aoc.Up)
	return northLoad(g)
}

// want=64
func (s Solver) D14p2() any {
	return loadAfter(parseGrid(s.Lines()), 1000000000)
}
