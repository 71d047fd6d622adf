package valueobject

import "testing"

func TestDescriptionSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical strings", "school fees march", "school fees march", 1},
		{"both empty", "", "", 1},
		{"one empty", "school fees", "", 0},
		{"other empty", "", "school fees", 0},
		{"completely different same length", "abcd", "wxyz", 0},
		{"single substitution", "abcd", "abce", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescriptionSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("DescriptionSimilarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		if got := DescriptionSimilarity("ABC", "abc"); got == 1 {
			t.Error("expected case-sensitive comparison to score below 1")
		}
	})

	t.Run("close variants score above the default threshold", func(t *testing.T) {
		got := DescriptionSimilarity("school fee payment j smith", "school fee payment j. smith")
		if got < 0.65 {
			t.Errorf("expected similarity >= 0.65, got %f", got)
		}
	})
}
