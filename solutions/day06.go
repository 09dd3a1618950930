package solutions

import (
	"fmt"
	"math"
	"strings"

	"aoc2023"
)

type race struct {
	time, record int
}

// wins counts the whole-number charge times that beat the record.
// Charging for c of t milliseconds travels c*(t-c), so the winning
// charges are the integers strictly between the roots of
// x^2 - t*x + record.
func (r race) wins() int {
	hi, lo := aoc.SolveQuad(1, -r.time, r.record)
	return (int(math.Ceil(hi)) - 1) - (int(math.Floor(lo)) + 1) + 1
}

func parseRaces(lines []string) ([]race, error) {
	if len(lines) != 2 {
		return nil, fmt.Errorf("want 2 lines, got %d", len(lines))
	}
	times := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[0], "Time:"))...)
	records := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))...)
	if len(times) != len(records) {
		return nil, fmt.Errorf("%d times vs %d distances", len(times), len(records))
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], record: records[i]}
	}
	return races, nil
}

// parseLongRace reads the two lines as a single race with the spaces
// removed.
func parseLongRace(lines []string) race {
	join := func(s string) int {
		return aoc.Int(strings.ReplaceAll(s, " ", ""))
	}
	return race{
		time:   join(aoc.TrimPrefix(lines[0], "Time:")),
		record: join(aoc.TrimPrefix(lines[1], "Distance:")),
	}
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s Solver) D6p1() any {
	product := 1
	for _, r := range aoc.MustGet(parseRaces(s.Lines())) {
		product *= r.wins()
	}
	return product
}

// want=71503
func (s Solver) D6p2() any {
	return parseLongRace(s.Lines()).wins()
}
