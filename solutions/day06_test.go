package solutions

import "testing"

var raceLines = []string{
	"Time:      7  15   30",
	"Distance:  9  40  200",
}

func TestRaceWins(t *testing.T) {
	races, err := parseRaces(raceLines)
	if err != nil {
		t.Fatal(err)
	}
	// The last race has integer roots (10 and 20), which must be
	// excluded: tying the record is not a win.
	want := []int{4, 8, 9}
	for i, r := range races {
		if got := r.wins(); got != want[i] {
			t.Errorf("race %+v wins = %d, want %d", r, got, want[i])
		}
	}
}

func TestParseLongRace(t *testing.T) {
	r := parseLongRace(raceLines)
	if r.time != 71530 || r.record != 940200 {
		t.Fatalf("parseLongRace = %+v, want {71530 940200}", r)
	}
	if got := r.wins(); got != 71503 {
		t.Errorf("long race wins = %d, want 71503", got)
	}
}

func TestParseRacesErrors(t *testing.T) {
	if _, err := parseRaces([]string{"Time: 1"}); err == nil {
		t.Error("parseRaces with one line succeeded, want error")
	}
	if _, err := parseRaces([]string{"Time: 1 2", "Distance: 3"}); err == nil {
		t.Error("parseRaces with mismatched counts succeeded, want error")
	}
}
