package solutions

import (
	"testing"

	"aoc2023"
)

var digLines = []string{
	"R 6 (#70c710)",
	"D 5 (#0dc571)",
	"L 2 (#5713f0)",
	"D 2 (#d2c081)",
	"R 2 (#59c680)",
	"D 2 (#411b91)",
	"L 5 (#8ceee2)",
	"U 2 (#caa173)",
	"L 1 (#1b58a2)",
	"U 2 (#caa171)",
	"R 2 (#7807d2)",
	"U 3 (#a77fa3)",
	"L 2 (#015232)",
	"U 2 (#7a21e3)",
}

func TestParseDigPlan(t *testing.T) {
	plan, colorPlan, err := parseDigPlan(digLines)
	if err != nil {
		t.Fatal(err)
	}
	if want := (digStep{dir: aoc.Right, dist: 6}); plan[0] != want {
		t.Errorf("plan[0] = %+v, want %+v", plan[0], want)
	}
	if want := (digStep{dir: aoc.Right, dist: 461937}); colorPlan[0] != want {
		t.Errorf("colorPlan[0] = %+v, want %+v", colorPlan[0], want)
	}
	if want := (digStep{dir: aoc.Up, dist: 500254}); colorPlan[len(colorPlan)-1] != want {
		t.Errorf("last colorPlan step = %+v, want %+v", colorPlan[len(colorPlan)-1], want)
	}

	if _, _, err := parseDigPlan([]string{"X 1 (#000000)"}); err == nil {
		t.Error("parseDigPlan of bad direction succeeded, want error")
	}
}

func TestLagoonSize(t *testing.T) {
	plan, colorPlan, err := parseDigPlan(digLines)
	if err != nil {
		t.Fatal(err)
	}
	if got := lagoonSize(plan); got != 62 {
		t.Errorf("lagoonSize(plan) = %d, want 62", got)
	}
	if got := lagoonSize(colorPlan); got != 952408144115 {
		t.Errorf("lagoonSize(colorPlan) = %d, want 952408144115", got)
	}
}

func TestLagoonSizeSquare(t *testing.T) {
	// A 2x2 loop digs a 3x3 lagoon.
	plan := []digStep{
		{dir: aoc.Right, dist: 2},
		{dir: aoc.Down, dist: 2},
		{dir: aoc.Left, dist: 2},
		{dir: aoc.Up, dist: 2},
	}
	if got := lagoonSize(plan); got != 9 {
		t.Errorf("lagoonSize of 2x2 loop = %d, want 9", got)
	}
}
