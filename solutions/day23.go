package solutions

import (
	"fmt"

	"aoc2023"
)

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

// slipperyHike finds the longest walk from start to end when slope
// tiles force the next step, via DFS over individual cells.
func slipperyHike(g aoc.Grid[byte], start, end aoc.Pt) int {
	visited := map[aoc.Pt]bool{}
	var dfs func(p aoc.Pt) int
	dfs = func(p aoc.Pt) int {
		if p == end {
			return 0
		}
		visited[p] = true
		defer delete(visited, p)

		dirs := []aoc.Direction{aoc.Up, aoc.Right, aoc.Down, aoc.Left}
		if d, ok := slopes[g.At(p)]; ok {
			dirs = []aoc.Direction{d}
		}
		best := -1
		for _, d := range dirs {
			next, ok := g.Move(aoc.Path{Pt: p, Dir: d})
			if !ok || g.At(next.Pt) == '#' || visited[next.Pt] {
				continue
			}
			if got := dfs(next.Pt); got >= 0 && got+1 > best {
				best = got + 1
			}
		}
		return best
	}
	return dfs(start)
}

// dryHike ignores the slopes: the trail grid collapses into a small
// junction graph, and the answer is its longest simple path.
func dryHike(g aoc.Grid[byte], start, end aoc.Pt) int {
	graph := g.ToGraph(start, false, func(b byte) bool { return b == '#' })
	dist, ok := graph.LongestPath(start, end)
	if !ok {
		panic(fmt.Sprintf("no path from %v to %v", start, end))
	}
	return dist
}

func trailEnds(g aoc.Grid[byte]) (start, end aoc.Pt) {
	size := g.Size()
	return aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: size.X - 2, Y: size.Y - 1}
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.#.#.#.###.#.#.###
#.....###...###.#.#...#
#####################.#
*/
func (s Solver) D23p1() any {
	g := parseGrid(s.Lines())
	start, end := trailEnds(g)
	return slipperyHike(g, start, end)
}

// want=154
func (s Solver) D23p2() any {
	g := parseGrid(s.Lines())
	start, end := trailEnds(g)
	return dryHike(g, start, end)
}
