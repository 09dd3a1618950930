package solutions

import (
	"fmt"
	"regexp"
	"strings"

	"aoc2023"
)

var nodeRx = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

type network struct {
	dirs  string
	nodes map[string][2]string
}

func parseNetwork(lines []string) (network, error) {
	if len(lines) < 3 || lines[1] != "" {
		return network{}, fmt.Errorf("want directions, a blank line, and nodes")
	}
	n := network{dirs: lines[0], nodes: map[string][2]string{}}
	for _, l := range lines[2:] {
		m := nodeRx.FindStringSubmatch(l)
		if m == nil {
			return network{}, fmt.Errorf("invalid node: %q", l)
		}
		n.nodes[m[1]] = [2]string{m[2], m[3]}
	}
	return n, nil
}

// stepsTo walks the network from start, cycling through the direction
// list, until reaching a node that ends in Z.
func (n network) stepsTo(start string) int {
	cur := start
	for steps := 1; ; steps++ {
		next, ok := n.nodes[cur]
		if !ok {
			panic(fmt.Sprintf("node %q not in network", cur))
		}
		if n.dirs[(steps-1)%len(n.dirs)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
		if strings.HasSuffix(cur, "Z") {
			return steps
		}
	}
}

func (n network) starts() []string {
	var starts []string
	for node := range n.nodes {
		if strings.HasSuffix(node, "A") {
			starts = append(starts, node)
		}
	}
	return starts
}

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s Solver) D8p1() any {
	return aoc.MustGet(parseNetwork(s.Lines())).stepsTo("AAA")
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s Solver) D8p2() any {
	// Each ghost's path is periodic from the start, so the first step
	// where all of them stand on a Z node is the LCM of their cycles.
	n := aoc.MustGet(parseNetwork(s.Lines()))
	return aoc.LCM(aoc.Parallel(n.starts(), n.stepsTo)...)
}
