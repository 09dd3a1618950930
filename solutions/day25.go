package solutions

import (
	"fmt"
	"strings"

	"aoc2023"
)

func parseWiring(lines []string) (*aoc.Graph[string], error) {
	var g aoc.Graph[string]
	for _, l := range lines {
		name, rest, ok := strings.Cut(l, ": ")
		if !ok {
			return nil, fmt.Errorf("invalid component: %q", l)
		}
		for _, dest := range strings.Fields(rest) {
			g.AddEdge(name, dest, 1)
		}
	}
	return &g, nil
}

/*
want=54

jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
*/
func (s Solver) D25p1() any {
	// The component graph splits in two once the three-edge min cut is
	// severed; the answer is the product of the two component sizes.
	g := aoc.MustGet(parseWiring(s.Lines()))
	cuts := g.MinCut()
	for _, c := range cuts {
		g.RemoveEdge(c.A, c.B)
	}
	side := g.ReachableNodes(cuts[0].A)
	return len(side) * (len(g.Nodes) - len(side))
}
