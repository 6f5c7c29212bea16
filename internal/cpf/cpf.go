// Package cpf validates Brazilian individual taxpayer identifiers (CPF).
//
// A CPF is an 11-digit number whose last two digits are check digits
// computed from the preceding ones with a weighted modulo-11 formula.
// Input may carry any formatting ("529.982.247-25", "52998224725",
// " 529 982 247 25 "); everything that is not a decimal digit is ignored.
//
// The package is pure: no I/O, no shared state, safe for concurrent use.
package cpf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length is the number of digits in a CPF.
const Length = 11

// maxDigitRune bounds the runes classified as digits. Digits outside the
// Basic Multilingual Plane are ignored like any other formatting character.
const maxDigitRune = 0xFFFF

func isDigit(r rune) bool {
	return r <= maxDigitRune && unicode.IsDigit(r)
}

// Digits returns the decimal digits of raw, in order, with every other
// character removed.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid reports whether raw holds a CPF with correct check digits.
//
// It never panics and returns false for any malformed input: a digit
// sequence that is not exactly 11 long, 11 repetitions of the same digit,
// or a check digit mismatch.
func IsValid(raw string) bool {
	digits := make([]int, 0, Length)
	for _, r := range raw {
		if !isDigit(r) {
			continue
		}
		// Non-ASCII decimal digits count as digits but carry no value.
		if r < '0' || r > '9' {
			return false
		}
		if len(digits) == Length {
			return false
		}
		digits = append(digits, int(r-'0'))
	}

	if len(digits) != Length || repeated(digits) {
		return false
	}

	if checkDigit(digits[:9]) != digits[9] {
		return false
	}
	return checkDigit(digits[:10]) == digits[10]
}

// checkDigit weights digits from len(digits)+1 down to 2 and reduces the
// sum modulo 11.
func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func repeated(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// Mask hides every digit of raw except the last two, for logging.
//
//	Mask("529.982.247-25") == "*********25"
func Mask(raw string) string {
	digits := Digits(raw)
	n := utf8.RuneCountInString(digits)
	if n <= 2 {
		return strings.Repeat("*", n)
	}

	runes := []rune(digits)
	return strings.Repeat("*", n-2) + string(runes[n-2:])
}
