package solutions

import "testing"

var gameLines = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
}

func TestParseGame(t *testing.T) {
	g, err := parseGame(gameLines[0])
	if err != nil {
		t.Fatal(err)
	}
	if g.id != 1 {
		t.Errorf("id = %d, want 1", g.id)
	}
	if len(g.hands) != 3 {
		t.Fatalf("hands = %d, want 3", len(g.hands))
	}
	if want := (cubeSet{red: 4, blue: 3}); g.hands[0] != want {
		t.Errorf("hands[0] = %+v, want %+v", g.hands[0], want)
	}

	for _, bad := range []string{"Game one: 1 red", "Game 1: 1 mauve", "Game 1: red"} {
		if _, err := parseGame(bad); err == nil {
			t.Errorf("parseGame(%q) succeeded, want error", bad)
		}
	}
}

func TestMinCubes(t *testing.T) {
	games, err := parseGames(gameLines)
	if err != nil {
		t.Fatal(err)
	}
	wantPower := []int{48, 12, 1560, 630, 36}
	bag := cubeSet{red: 12, green: 13, blue: 14}
	wantPossible := []bool{true, true, false, false, true}
	for i, g := range games {
		m := g.minCubes()
		if got := m.power(); got != wantPower[i] {
			t.Errorf("game %d power = %d, want %d", g.id, got, wantPower[i])
		}
		if got := bag.contains(m); got != wantPossible[i] {
			t.Errorf("game %d possible = %v, want %v", g.id, got, wantPossible[i])
		}
	}
}
