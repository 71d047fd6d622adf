package duplicate

import (
	"strings"
	"testing"
	"time"
)

func TestCompositeKey(t *testing.T) {
	date := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("key combines date, amount, and normalized description", func(t *testing.T) {
		key := CompositeKey(date, 50000, "School Fees J Smith")
		if key != "2025-03-10|50000|school fees j smith" {
			t.Errorf("unexpected key: %s", key)
		}
	})

	t.Run("time of day does not change the key", func(t *testing.T) {
		morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		if CompositeKey(date, 100, "x") != CompositeKey(morning, 100, "x") {
			t.Error("expected keys to match regardless of time of day")
		}
	})
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "SCHOOL FEES", "school fees"},
		{"collapses whitespace", "school   fees\tj smith", "school fees j smith"},
		{"strips embedded dates", "payment 2025-03-10 school", "payment school"},
		{"strips slash dates", "payment 10/03/2025 school", "payment school"},
		{"strips ref tokens", "eft ref 12345 school", "eft school"},
		{"strips hash references", "payment #98765 school", "payment school"},
		{"strips long digit runs", "deposit 4000123456789 branch", "deposit branch"},
		{"keeps short numbers", "invoice 42", "invoice 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDescription(tt.in); got != tt.want {
				t.Errorf("normalizeDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	t.Run("truncates long descriptions", func(t *testing.T) {
		long := strings.Repeat("a", 80)
		got := normalizeDescription(long)
		if len([]rune(got)) != compositeKeyMaxDescription {
			t.Errorf("expected %d runes, got %d", compositeKeyMaxDescription, len([]rune(got)))
		}
	})

	t.Run("noise variants collapse to the same value", func(t *testing.T) {
		a := normalizeDescription("EFT Payment Ref 10293 School Fees")
		b := normalizeDescription("eft payment ref: 55511 school fees")
		if a != b {
			t.Errorf("expected %q == %q", a, b)
		}
	})
}
