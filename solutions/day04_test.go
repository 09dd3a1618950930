package solutions

import "testing"

var cardLines = []string{
	"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53",
	"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19",
	"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1",
	"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83",
	"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36",
	"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 91",
}

func TestCardScore(t *testing.T) {
	cards, err := parseCards(cardLines)
	if err != nil {
		t.Fatal(err)
	}
	wantWins := []int{4, 2, 2, 1, 0, 0}
	wantScore := []int{8, 2, 2, 1, 0, 0}
	for i, c := range cards {
		if got := c.wins(); got != wantWins[i] {
			t.Errorf("card %d wins = %d, want %d", i+1, got, wantWins[i])
		}
		if got := c.score(); got != wantScore[i] {
			t.Errorf("card %d score = %d, want %d", i+1, got, wantScore[i])
		}
	}
}

func TestCardCounts(t *testing.T) {
	cards, err := parseCards(cardLines)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 4, 8, 14, 1}
	got := cardCounts(cards)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("counts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseCardsError(t *testing.T) {
	if _, err := parseCards([]string{"not a card"}); err == nil {
		t.Error("parseCards of malformed line succeeded, want error")
	}
}
