// Package random supplies the seedable choices the page objects make.
package random

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// ErrNoOptions is returned when a choice is requested from an empty set
var ErrNoOptions = errors.New("no options to choose from")

// Source is the randomness the suite depends on. *gofakeit.Faker satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a faker seeded with seed, or with the clock when seed is 0
func New(seed uint64) *gofakeit.Faker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return gofakeit.New(seed)
}

// Index returns a uniform index in [0, n)
func Index(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoOptions
	}
	return src.IntN(n), nil
}

// Pick returns a uniformly chosen element of options
func Pick[T any](src Source, options []T) (T, error) {
	var zero T
	i, err := Index(src, len(options))
	if err != nil {
		return zero, err
	}
	return options[i], nil
}

// Letter returns a random lower-case latin letter
func Letter(src Source) string {
	return string(rune('a' + src.IntN(26)))
}

// IntBetween returns a uniform integer in [lo, hi]
func IntBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// PointIn returns a uniform pixel offset inside a width x height box
func PointIn(src Source, width, height float64) (x, y float64) {
	w, h := int(width), int(height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return float64(src.IntN(w)), float64(src.IntN(h))
}

// Words is a Source that can also produce words
type Words interface {
	Source
	Noun() string
}

// Text joins random nouns into a string of minLen to maxLen runes
func Text(src Words, minLen, maxLen int) string {
	target := IntBetween(src, minLen, maxLen)
	if target <= 0 {
		return ""
	}
	var runes []rune
	for len(runes) < target {
		w := src.Noun()
		if w == "" {
			w = "x"
		}
		if len(runes) > 0 {
			runes = append(runes, ' ')
		}
		runes = append(runes, []rune(w)...)
	}
	runes = runes[:target]
	if runes[len(runes)-1] == ' ' {
		runes[len(runes)-1] = 'a'
	}
	return string(runes)
}
