package solutions

import "testing"

var starLines = []string{
	"...#......",
	".......#..",
	"#.........",
	"..........",
	"......#...",
	".#........",
	".........#",
	"..........",
	".......#..",
	"#...#.....",
}

func TestExpandStars(t *testing.T) {
	stars := parseStars(starLines)
	if len(stars) != 9 {
		t.Fatalf("parsed %d stars, want 9", len(stars))
	}
	tests := []struct {
		factor, want int
	}{
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tt := range tests {
		if got := pairDistances(expandStars(stars, tt.factor)); got != tt.want {
			t.Errorf("factor %d: pair distances = %d, want %d", tt.factor, got, tt.want)
		}
	}
}

func TestExpandStarsNoEmptySpace(t *testing.T) {
	// Every row and column holds a star, so expansion changes nothing.
	stars := parseStars([]string{"#.", ".#"})
	expanded := expandStars(stars, 100)
	for i := range stars {
		if expanded[i] != stars[i] {
			t.Errorf("star %d moved to %v, want %v", i, expanded[i], stars[i])
		}
	}
}

func TestPairDistances(t *testing.T) {
	stars := parseStars([]string{"#..#", "#..."})
	// (0,0)-(3,0)=3, (0,0)-(0,1)=1, (3,0)-(0,1)=4
	if got := pairDistances(stars); got != 8 {
		t.Errorf("pairDistances = %d, want 8", got)
	}
}
