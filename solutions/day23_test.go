package solutions

import (
	"testing"

	"aoc2023"
)

// trailMap is a ladder with two rungs. The slopes on the right rail
// only allow climbing it, so the slippery walk is stuck with the left
// rail while the dry walk can zigzag.
var trailMap = []string{
	"#.#####",
	"#.....#",
	"#.###^#",
	"#.....#",
	"#.###^#",
	"#.....#",
	"#.#####",
}

func TestTrailEnds(t *testing.T) {
	g := parseGrid([]string{
		"#.###",
		"#.>.#",
		"###.#",
	})
	start, end := trailEnds(g)
	if start != (aoc.Pt{X: 1, Y: 0}) {
		t.Errorf("start = %v, want {1 0}", start)
	}
	if end != (aoc.Pt{X: 3, Y: 2}) {
		t.Errorf("end = %v, want {3 2}", end)
	}
}

func TestSlipperyHike(t *testing.T) {
	g := parseGrid([]string{
		"#.###",
		"#.>.#",
		"###.#",
	})
	if got := slipperyHike(g, aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 3, Y: 2}); got != 4 {
		t.Errorf("corridor hike = %d, want 4", got)
	}

	g = parseGrid(trailMap)
	if got := slipperyHike(g, aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 1, Y: 6}); got != 6 {
		t.Errorf("ladder hike = %d, want 6", got)
	}
}

func TestSlipperyHikeUnreachable(t *testing.T) {
	g := parseGrid([]string{
		"#.#",
		"#v#",
		"#^#",
		"#.#",
	})
	// Opposing slopes seal the corridor shut.
	if got := slipperyHike(g, aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 1, Y: 3}); got != -1 {
		t.Errorf("sealed corridor hike = %d, want -1", got)
	}
}

func TestDryHike(t *testing.T) {
	g := parseGrid(trailMap)
	// Taking a rail, a rung, and the other rail beats walking straight
	// down: 6+4+2 junction hops plus the two end stubs.
	if got := dryHike(g, aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 1, Y: 6}); got != 14 {
		t.Errorf("dry hike = %d, want 14", got)
	}
}
