//nolint:testpackage // Tests require internal access for thorough testing
package task

import (
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
		ok    bool
	}{
		{"high", PriorityHigh, true},
		{"HIGH", PriorityHigh, true},
		{"Medium", PriorityMedium, true},
		{" low ", PriorityLow, true},
		{"critical", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParsePriority(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsValidPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityHigh, true},
		{PriorityMedium, true},
		{PriorityLow, true},
		{Priority("HIGH"), false},
		{Priority("invalid"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := IsValidPriority(tt.priority); got != tt.valid {
				t.Errorf("IsValidPriority(%q) = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriorityNextCycles(t *testing.T) {
	p := PriorityLow
	for i := 0; i < 3; i++ {
		p = p.Next()
	}
	if p != PriorityLow {
		t.Errorf("three Next() calls from low = %q, want low", p)
	}
	if PriorityHigh.Label() != "HIGH" {
		t.Errorf("Label() = %q, want HIGH", PriorityHigh.Label())
	}
}

func TestGenerateID(t *testing.T) {
	now := time.Now()

	id := GenerateID("Test task", now, func(_ string) bool { return false })
	if len(id) < 3 {
		t.Errorf("ID too short: %s", id)
	}
	if len(id) > 8 {
		t.Errorf("ID too long: %s", id)
	}

	// Should grow past taken prefixes
	taken := 0
	id = GenerateID("Test task", now, func(_ string) bool {
		taken++
		return taken <= 2
	})
	if len(id) != 5 {
		t.Errorf("ID after two collisions = %q, want length 5", id)
	}
}

func TestDerivedIDIsStable(t *testing.T) {
	none := func(_ string) bool { return false }

	first := DerivedID(0, "Buy milk", none)
	if again := DerivedID(0, "Buy milk", none); again != first {
		t.Errorf("DerivedID changed between calls: %q then %q", first, again)
	}
	if len(first) != minIDLength {
		t.Errorf("DerivedID() = %q, want length %d", first, minIDLength)
	}
	if DerivedID(1, "Buy milk", none) == first {
		t.Error("same text at another position should get another ID")
	}

	grown := DerivedID(0, "Buy milk", func(c string) bool { return c == first })
	if len(grown) != minIDLength+1 || grown[:minIDLength] != first {
		t.Errorf("DerivedID past a collision = %q, want %q plus one character", grown, first)
	}
}
