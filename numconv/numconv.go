package numconv

import (
	"fmt"

	"github.com/philipp01105/kdiag/core"
)

// Alphabet is an ordered set of digit characters. Its length is the radix.
type Alphabet string

// Common alphabets
const (
	Binary   Alphabet = "01"
	Octal    Alphabet = "01234567"
	Decimal  Alphabet = "0123456789"
	HexLower Alphabet = "0123456789abcdef"
	HexUpper Alphabet = "0123456789ABCDEF"
)

// maxDigits is the longest magnitude any alphabet can produce (radix 2, 64 bits)
const maxDigits = 64

// NewAlphabet validates digits as an Alphabet: at least two characters and
// no character repeated.
func NewAlphabet(digits string) (Alphabet, error) {
	if len(digits) < 2 {
		return "", fmt.Errorf("alphabet %q: need at least 2 digits: %w", digits, core.ErrInvalidAlphabet)
	}
	var seen [256]bool
	for i := 0; i < len(digits); i++ {
		if seen[digits[i]] {
			return "", fmt.Errorf("alphabet %q: digit %q repeated: %w", digits, digits[i], core.ErrInvalidAlphabet)
		}
		seen[digits[i]] = true
	}
	return Alphabet(digits), nil
}

// Radix returns the number base the alphabet encodes
func (a Alphabet) Radix() int {
	return len(a)
}

// Valid reports whether the alphabet can form a radix
func (a Alphabet) Valid() bool {
	return len(a) >= 2
}

// AppendUint64 appends the text of v in alphabet a to dst.
func AppendUint64(dst []byte, v uint64, a Alphabet) []byte {
	if !a.Valid() {
		return dst
	}
	if v == 0 {
		return append(dst, a[0])
	}

	var scratch [maxDigits]byte
	radix := uint64(len(a))
	n := 0
	for v != 0 {
		scratch[n] = a[v%radix]
		n++
		v /= radix
	}

	// digits are least-significant-first; reverse in place
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return append(dst, scratch[:n]...)
}

// AppendInt64 appends the text of v in alphabet a to dst. Negative values
// get a leading '-' followed by the magnitude.
func AppendInt64(dst []byte, v int64, a Alphabet) []byte {
	if !a.Valid() {
		return dst
	}
	u := uint64(v)
	if v < 0 {
		dst = append(dst, '-')
		u = -u
	}
	return AppendUint64(dst, u, a)
}

// AppendUint32 appends the text of v in alphabet a to dst.
func AppendUint32(dst []byte, v uint32, a Alphabet) []byte {
	return AppendUint64(dst, uint64(v), a)
}

// AppendInt32 appends the text of v in alphabet a to dst.
func AppendInt32(dst []byte, v int32, a Alphabet) []byte {
	return AppendInt64(dst, int64(v), a)
}

// FormatUint64 returns the text of v in alphabet a.
func FormatUint64(v uint64, a Alphabet) string {
	var buf [maxDigits]byte
	return string(AppendUint64(buf[:0], v, a))
}

// FormatInt64 returns the text of v in alphabet a.
func FormatInt64(v int64, a Alphabet) string {
	var buf [maxDigits + 1]byte
	return string(AppendInt64(buf[:0], v, a))
}

// FormatUint32 returns the text of v in alphabet a.
func FormatUint32(v uint32, a Alphabet) string {
	return FormatUint64(uint64(v), a)
}

// FormatInt32 returns the text of v in alphabet a.
func FormatInt32(v int32, a Alphabet) string {
	return FormatInt64(int64(v), a)
}
