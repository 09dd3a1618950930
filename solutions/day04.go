package solutions

import (
	"fmt"
	"regexp"
	"strings"

	"aoc2023"
)

var cardRx = regexp.MustCompile(`^Card\s+(\d+):\s+(.*?)\s+\|\s+(.*)$`)

type card struct {
	win     map[int]bool
	numbers []int
}

func (c card) wins() int {
	n := 0
	for _, v := range c.numbers {
		if c.win[v] {
			n++
		}
	}
	return n
}

func (c card) score() int {
	w := c.wins()
	if w == 0 {
		return 0
	}
	return 1 << (w - 1)
}

func parseCards(lines []string) ([]card, error) {
	cards := make([]card, len(lines))
	for i, l := range lines {
		m := cardRx.FindStringSubmatch(l)
		if m == nil {
			return nil, fmt.Errorf("invalid card: %q", l)
		}
		c := card{win: map[int]bool{}}
		for _, v := range aoc.Ints(strings.Fields(m[2])...) {
			c.win[v] = true
		}
		c.numbers = aoc.Ints(strings.Fields(m[3])...)
		cards[i] = c
	}
	return cards, nil
}

// cardCounts returns how many copies of each card end up in hand once
// winners duplicate the following cards.
func cardCounts(cards []card) []int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		for j := 1; j <= c.wins(); j++ {
			counts[i+j] += counts[i]
		}
	}
	return counts
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 91
*/
func (s Solver) D4p1() any {
	sum := 0
	for _, c := range aoc.MustGet(parseCards(s.Lines())) {
		sum += c.score()
	}
	return sum
}

// want=30
func (s Solver) D4p2() any {
	return aoc.Sum(cardCounts(aoc.MustGet(parseCards(s.Lines())))...)
}
