package solutions

import (
	"slices"
	"strings"

	"aoc2023"
)

// holidayHash is the HASH algorithm: an add-then-multiply-by-17 fold
// over the bytes, mod 256.
func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int
}

// focusingPower runs the HASHMAP procedure: each step removes a lens or
// installs one in the box its label hashes to, then the lens positions
// are scored.
func focusingPower(steps []string) int {
	var boxes [256][]lens
	for _, step := range steps {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := holidayHash(label)
			boxes[b] = slices.DeleteFunc(boxes[b], func(l lens) bool { return l.label == label })
			continue
		}
		label, focal, _ := strings.Cut(step, "=")
		b := holidayHash(label)
		i := slices.IndexFunc(boxes[b], func(l lens) bool { return l.label == label })
		if i >= 0 {
			boxes[b][i].focal = aoc.Int(focal)
		} else {
			boxes[b] = append(boxes[b], lens{label: label, focal: aoc.Int(focal)})
		}
	}

	power := 0
	for bi, box := range boxes {
		for li, l := range box {
			power += (bi + 1) * (li + 1) * l.focal
		}
	}
	return power
}

func initSteps(lines []string) []string {
	return strings.Split(strings.TrimSpace(strings.Join(lines, "")), ",")
}

/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func (s Solver) D15p1() any {
	sum := 0
	for _, step := range initSteps(s.Lines()) {
		sum += holidayHash(step)
	}
	return sum
}

// want=145
func (s Solver) D15p2() any {
	return focusingPower(initSteps(s.Lines()))
}
