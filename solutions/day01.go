package solutions

import (
	"fmt"
	"strings"

	"aoc2023"
)

// digitWords maps the ten spelled-out digits to their values.
var digitWords = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// marker delimits numerals injected by spellDigits. It never occurs in
// puzzle input.
const marker = "\x1f"

// spellDigits inserts a marker-delimited numeral in front of every
// position of line where a spelled-out digit starts, keeping the
// matched letters in place. Matches are found against the original
// line in a single scan, so overlapping words ("twone") each
// contribute their own numeral.
func spellDigits(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		for word, value := range digitWords {
			if strings.HasPrefix(line[i:], word) {
				b.WriteString(marker)
				b.WriteByte(byte('0' + value))
				b.WriteString(marker)
				break
			}
		}
		b.WriteByte(line[i])
	}
	return b.String()
}

// calibrationValue combines the first and last numeral of line into a
// two-digit number. A single numeral serves as both digits. A line
// without numerals is an error: skipping it or counting it as 0 would
// silently corrupt the sum.
func calibrationValue(line string) (int, error) {
	first, last := -1, -1
	for _, r := range line {
		if r < '0' || r > '9' {
			continue
		}
		if first == -1 {
			first = aoc.Digit(r)
		}
		last = aoc.Digit(r)
	}
	if first == -1 {
		return 0, fmt.Errorf("no digits in line %q", line)
	}
	return first*10 + last, nil
}

// calibrationSum folds the per-line calibration values into a total.
// Lines are independent, so the extraction runs in parallel.
func calibrationSum(lines []string, preprocess func(string) string) int {
	if preprocess == nil {
		preprocess = func(line string) string { return line }
	}
	return aoc.ParallelMapFold(lines,
		func(line string) int {
			return aoc.MustGet(calibrationValue(preprocess(line)))
		},
		func(total, v int) int { return total + v },
		0)
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s Solver) D1p1() any {
	return calibrationSum(s.Lines(), nil)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s Solver) D1p2() any {
	return calibrationSum(s.Lines(), spellDigits)
}
