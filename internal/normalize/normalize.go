// Package normalize states how the marketplace forms sanitize what users type
// or paste, so scenarios can derive the value a field should end up with.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SpecialChars are stripped by every free-text field on the wizard
const SpecialChars = "<>{};^"

// MaxPriceDigits is the longest value a price input keeps
const MaxPriceDigits = 9

// StripSpecial removes every rune found in SpecialChars
func StripSpecial(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(SpecialChars, r) {
			return -1
		}
		return r
	}, s)
}

// Model is what the model-name input keeps of s
func Model(s string) string {
	return strings.TrimSpace(StripSpecial(s))
}

// Manufacturer is what the manufacturer search keeps of s
func Manufacturer(s string) string {
	return blankToEmpty(StripSpecial(s))
}

// ServiceQuery is what the service search keeps of s
func ServiceQuery(s string) string {
	return blankToEmpty(StripSpecial(s))
}

// Price keeps digits only, without leading zeros, capped at MaxPriceDigits
func Price(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == 0 && r == '0' {
			continue
		}
		if b.Len() == MaxPriceDigits {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate returns at most n runes of s
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// EqualFold compares ignoring case only
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// EqualBase compares at base strength: case and diacritics are ignored
func EqualBase(a, b string) bool {
	c := collate.New(language.Ukrainian, collate.Loose)
	return c.CompareString(strings.TrimSpace(a), strings.TrimSpace(b)) == 0
}

func blankToEmpty(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0 {
		return ""
	}
	return s
}
