package solutions

import (
	"fmt"
	"regexp"
	"strconv"

	"aoc2023"
)

var digRx = regexp.MustCompile(`^([UDLR]) (\d+) \(#([0-9a-f]{5})([0-3])\)$`)

type digStep struct {
	dir  aoc.Direction
	dist int
}

// parseDigPlan reads the dig plan twice: once as written, and once
// decoded from the hex color (first five digits are the distance, the
// last one the direction).
func parseDigPlan(lines []string) (plan, colorPlan []digStep, err error) {
	dirs := map[string]aoc.Direction{
		"U": aoc.Up, "D": aoc.Down, "L": aoc.Left, "R": aoc.Right,
		"3": aoc.Up, "1": aoc.Down, "2": aoc.Left, "0": aoc.Right,
	}
	for _, l := range lines {
		m := digRx.FindStringSubmatch(l)
		if m == nil {
			return nil, nil, fmt.Errorf("invalid dig instruction: %q", l)
		}
		plan = append(plan, digStep{dir: dirs[m[1]], dist: aoc.Int(m[2])})
		colorPlan = append(colorPlan, digStep{
			dir:  dirs[m[4]],
			dist: int(aoc.MustGet(strconv.ParseInt(m[3], 16, 64))),
		})
	}
	return plan, colorPlan, nil
}

// lagoonSize returns the number of lattice points inside or on the
// trench loop dug by plan.
func lagoonSize(plan []digStep) int {
	pts := []aoc.Pt{{X: 0, Y: 0}}
	var cur aoc.Pt
	for _, s := range plan {
		switch s.dir {
		case aoc.Up:
			cur.Y -= s.dist
		case aoc.Down:
			cur.Y += s.dist
		case aoc.Left:
			cur.X -= s.dist
		case aoc.Right:
			cur.X += s.dist
		}
		pts = append(pts, cur)
	}
	return aoc.PolygonBoundedPoints(pts)
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s Solver) D18p1() any {
	plan, _, err := parseDigPlan(s.Lines())
	aoc.MustDo(err)
	return lagoonSize(plan)
}

// want=952408144115
func (s Solver) D18p2() any {
	_, colorPlan, err := parseDigPlan(s.Lines())
	aoc.MustDo(err)
	return lagoonSize(colorPlan)
}
