// Package valueobject contains domain value objects for the reconciliation core.
package valueobject

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// DescriptionSimilarity returns the normalized Levenshtein similarity between
// two strings: 1 - editDistance/max(len). Identical strings (including two
// empty ones) score 1; exactly one empty string scores 0. Comparison is
// case-sensitive; callers normalize case beforehand when needed.
func DescriptionSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}

	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(longest)
}
