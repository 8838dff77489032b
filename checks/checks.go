/*
Package checks provides utilities to validate sequence and structure strings
before they reach the kinetics engine: DNA/RNA alphabet checks, GC content,
and dot-bracket structure validation (plain, and the '*'-wildcard loose-match
dialect spec.md's stop-condition clauses accept).
*/
package checks

import "strings"

// IsPalindromic accepts a sequence of even length and returns if it is
// palindromic. More here - https://en.wikipedia.org/wiki/Palindromic_sequence
func IsPalindromic(sequence string) bool {
	return sequence == reverseComplement(sequence)
}

func reverseComplement(sequence string) string {
	runes := []rune(sequence)
	out := make([]rune, len(runes))
	for i, r := range runes {
		var c rune
		switch r {
		case 'A', 'a':
			c = 'T'
		case 'T', 't':
			c = 'A'
		case 'U', 'u':
			c = 'A'
		case 'C', 'c':
			c = 'G'
		case 'G', 'g':
			c = 'C'
		default:
			c = r
		}
		out[len(runes)-1-i] = c
	}
	return string(out)
}

// GcContent checks the GcContent of a given sequence.
func GcContent(sequence string) float64 {
	sequence = strings.ToUpper(sequence)
	GuanineCount := strings.Count(sequence, "G")
	CytosineCount := strings.Count(sequence, "C")
	GuanineAndCytosinePercentage := float64(GuanineCount+CytosineCount) / float64(len(sequence))
	return GuanineAndCytosinePercentage
}

// IsDNA accepts a string and checks if it is a valid DNA sequence.
func IsDNA(seq string) bool {
	for _, base := range seq {
		switch base {
		case 'A', 'C', 'T', 'G':
			continue
		default:
			return false
		}
	}
	return true
}

// IsRNA accepts a string and checks if it is a valid RNA sequence.
func IsRNA(seq string) bool {
	for _, base := range seq {
		switch base {
		case 'A', 'C', 'U', 'G':
			continue
		default:
			return false
		}
	}
	return true
}

// IsValidDotBracketStructure accepts a string and checks if it uses valid
// dot-bracket notation with multi-strand '+' separators: '.', '(', ')', '+'.
func IsValidDotBracketStructure(seq string) bool {
	for _, base := range seq {
		switch base {
		case '(', ')', '.', '+':
			continue
		default:
			return false
		}
	}
	return true
}

// IsValidLooseStructure is IsValidDotBracketStructure plus '*', the
// wildcard spec.md's LOOSE_STRUCTURE stop clauses use (stopcond.LooseMatch).
func IsValidLooseStructure(seq string) bool {
	for _, base := range seq {
		switch base {
		case '(', ')', '.', '+', '*':
			continue
		default:
			return false
		}
	}
	return true
}
