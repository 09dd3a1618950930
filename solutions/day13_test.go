package solutions

import "testing"

var patternLines = []string{
	"#.##..##.",
	"..#.##.#.",
	"##......#",
	"##......#",
	"..#.##.#.",
	"..##..##.",
	"#.#.##.#.",
	"",
	"#...##..#",
	"#....#..#",
	"..##..###",
	"#####.##.",
	"#####.##.",
	"..##..###",
	"#....#..#",
}

func TestMirrorRow(t *testing.T) {
	blocks := splitBlocks(patternLines)
	if len(blocks) != 2 {
		t.Fatalf("splitBlocks produced %d blocks, want 2", len(blocks))
	}
	first, second := parseGrid(blocks[0]), parseGrid(blocks[1])

	if got := mirrorRow(first, 0); got != 0 {
		t.Errorf("first pattern horizontal mirror = %d, want 0", got)
	}
	if got := mirrorRow(first.Transpose(), 0); got != 5 {
		t.Errorf("first pattern vertical mirror = %d, want 5", got)
	}
	if got := mirrorRow(second, 0); got != 4 {
		t.Errorf("second pattern horizontal mirror = %d, want 4", got)
	}
}

func TestSummarize(t *testing.T) {
	if got := summarizeAll(patternLines, 0); got != 405 {
		t.Errorf("summarizeAll clean = %d, want 405", got)
	}
	if got := summarizeAll(patternLines, 1); got != 400 {
		t.Errorf("summarizeAll one smudge = %d, want 400", got)
	}
}
