package solutions

import "testing"

const initSeq = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

func TestHolidayHash(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"HASH", 52},
		{"rn=1", 30},
		{"cm-", 253},
		{"rn", 0},
		{"qp", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := holidayHash(tt.in); got != tt.want {
			t.Errorf("holidayHash(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestInitSteps(t *testing.T) {
	steps := initSteps([]string{initSeq})
	if len(steps) != 11 {
		t.Fatalf("initSteps produced %d steps, want 11", len(steps))
	}
	sum := 0
	for _, step := range steps {
		sum += holidayHash(step)
	}
	if sum != 1320 {
		t.Errorf("hash sum = %d, want 1320", sum)
	}
}

func TestFocusingPower(t *testing.T) {
	if got := focusingPower(initSteps([]string{initSeq})); got != 145 {
		t.Errorf("focusingPower = %d, want 145", got)
	}
}

func TestFocusingPowerRemoveMissing(t *testing.T) {
	// Removing a label that was never installed is a no-op.
	if got := focusingPower([]string{"rn-", "cm=2"}); got != 2 {
		t.Errorf("focusingPower = %d, want 2", got)
	}
}
