package solutions

import (
	"aoc2023"
)

// beamOut returns the directions a beam leaves a tile in, given the
// direction it was traveling when it arrived.
func beamOut(tile byte, d aoc.Direction) []aoc.Direction {
	switch tile {
	case '/':
		switch d {
		case aoc.Up:
			return []aoc.Direction{aoc.Right}
		case aoc.Right:
			return []aoc.Direction{aoc.Up}
		case aoc.Down:
			return []aoc.Direction{aoc.Left}
		case aoc.Left:
			return []aoc.Direction{aoc.Down}
		}
	case '\\':
		switch d {
		case aoc.Up:
			return []aoc.Direction{aoc.Left}
		case aoc.Left:
			return []aoc.Direction{aoc.Up}
		case aoc.Down:
			return []aoc.Direction{aoc.Right}
		case aoc.Right:
			return []aoc.Direction{aoc.Down}
		}
	case '|':
		if d == aoc.Left || d == aoc.Right {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if d == aoc.Up || d == aoc.Down {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// traceBeam counts the tiles energized by a beam entering at start.
// Beams split at splitters, so the trace is a BFS over (tile, heading)
// states.
func (s Solver) traceBeam(g aoc.Grid[byte], start aoc.Path) int {
	seen := map[aoc.Path]bool{start: true}
	tiles := map[aoc.Pt]bool{}
	q := aoc.NewQueue(start)
	q.While(func(b aoc.Path) bool {
		tiles[b.Pt] = true
		for _, d := range beamOut(g.At(b.Pt), b.Dir) {
			next, ok := g.Move(aoc.Path{Pt: b.Pt, Dir: d})
			if !ok || seen[next] {
				continue
			}
			seen[next] = true
			q.Push(next)
		}
		return true
	})
	s.Debugf("beam from %v %v energized %d tiles", start.Pt, start.Dir, len(tiles))
	return len(tiles)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s Solver) D16p1() any {
	g := parseGrid(s.Lines())
	return s.traceBeam(g, aoc.Path{Pt: aoc.Pt{X: 0, Y: 0}, Dir: aoc.Right})
}

// want=51
func (s Solver) D16p2() any {
	g := parseGrid(s.Lines())
	return aoc.ParallelMapFold(g.EdgePaths(),
		func(start aoc.Path) int { return s.traceBeam(g, start) },
		func(best, v int) int { return max(best, v) },
		0)
}
