package solutions

import (
	"fmt"
	"regexp"
	"strings"

	"aoc2023"
)

var gameRx = regexp.MustCompile(`^Game (\d+): (.*)$`)

type cubeSet struct {
	red, green, blue int
}

func (c cubeSet) power() int {
	return c.red * c.green * c.blue
}

func (c cubeSet) contains(o cubeSet) bool {
	return o.red <= c.red && o.green <= c.green && o.blue <= c.blue
}

type game struct {
	id    int
	hands []cubeSet
}

// minCubes returns the smallest bag that makes every hand of the game
// possible.
func (g game) minCubes() cubeSet {
	var m cubeSet
	for _, h := range g.hands {
		m.red = max(m.red, h.red)
		m.green = max(m.green, h.green)
		m.blue = max(m.blue, h.blue)
	}
	return m
}

func parseGame(line string) (game, error) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return game{}, fmt.Errorf("invalid game: %q", line)
	}
	g := game{id: aoc.Int(m[1])}
	for _, hand := range strings.Split(m[2], "; ") {
		var c cubeSet
		for _, cube := range strings.Split(hand, ", ") {
			num, color, ok := strings.Cut(cube, " ")
			if !ok {
				return game{}, fmt.Errorf("invalid cube count: %q", cube)
			}
			switch color {
			case "red":
				c.red += aoc.Int(num)
			case "green":
				c.green += aoc.Int(num)
			case "blue":
				c.blue += aoc.Int(num)
			default:
				return game{}, fmt.Errorf("unknown color: %q", color)
			}
		}
		g.hands = append(g.hands, c)
	}
	return g, nil
}

func parseGames(lines []string) ([]game, error) {
	games := make([]game, len(lines))
	for i, l := range lines {
		g, err := parseGame(l)
		if err != nil {
			return nil, err
		}
		games[i] = g
	}
	return games, nil
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s Solver) D2p1() any {
	bag := cubeSet{red: 12, green: 13, blue: 14}
	sum := 0
	for _, g := range aoc.MustGet(parseGames(s.Lines())) {
		if bag.contains(g.minCubes()) {
			sum += g.id
		}
	}
	return sum
}

// want=2286
func (s Solver) D2p2() any {
	sum := 0
	for _, g := range aoc.MustGet(parseGames(s.Lines())) {
		sum += g.minCubes().power()
	}
	return sum
}
