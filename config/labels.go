package config

import (
	"fmt"
	"unicode/utf8"
)

// Labels is the ordered character vocabulary of the model. The position of
// each token is its class index in the character embedding and must never
// change for a trained checkpoint, so Labels is always carried as an ordered
// sequence.
type Labels []string

// Validate checks that the vocabulary is non-empty, that every token is a
// single character, and that no token appears twice.
func (l Labels) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("labels cannot be empty")
	}

	seen := make(map[string]int, len(l))
	for i, token := range l {
		if token == "" {
			return fmt.Errorf("labels[%d] is empty", i)
		}

		if utf8.RuneCountInString(token) != 1 {
			return fmt.Errorf("labels[%d] must be a single character, got %q", i, token)
		}

		if first, ok := seen[token]; ok {
			return fmt.Errorf("labels[%d] duplicates labels[%d]: %q", i, first, token)
		}
		seen[token] = i
	}

	return nil
}

// Index returns the class index of the given token, or -1 when the token is
// not part of the vocabulary.
func (l Labels) Index(token string) int {
	for i, t := range l {
		if t == token {
			return i
		}
	}
	return -1
}

// Runes returns the vocabulary as a rune slice in index order.
func (l Labels) Runes() []rune {
	runes := make([]rune, 0, len(l))
	for _, token := range l {
		r, _ := utf8.DecodeRuneInString(token)
		runes = append(runes, r)
	}
	return runes
}

// Equal reports whether two vocabularies contain the same tokens in the same
// order. Order matters: a permuted vocabulary remaps every class index.
func (l Labels) Equal(other Labels) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
