package shorturl

import (
	"fmt"
	"strings"
)

// enbase writes x in base len(alphabet), most significant digit first.
func (e *Encoder) enbase(x uint64) string {
	base := uint64(len(e.alphabet))
	if x < base {
		return string(e.alphabet[x])
	}
	// 64 digits covers uint64 even at base 2.
	var buf [64]byte
	pos := len(buf)
	for x > 0 {
		pos--
		buf[pos] = e.alphabet[x%base]
		x /= base
	}
	return string(buf[pos:])
}

// pad extends s to minLength with the alphabet's zero digit. The padding is a
// suffix, after the most significant digit; previously issued identifiers
// carry it there, so the placement must not change.
func (e *Encoder) pad(s string, minLength int) string {
	if len(s) >= minLength {
		return s
	}
	return s + strings.Repeat(string(e.alphabet[0]), minLength-len(s))
}

// debase interprets every character of s as a digit, last character least
// significant. There is no padding removal.
func (e *Encoder) debase(s string) (uint64, error) {
	base := uint64(len(e.alphabet))
	var result uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		d := e.index[c]
		if d < 0 {
			return 0, fmt.Errorf("%w '%c' in string", ErrInvalidCharacter, c)
		}
		result = result*base + uint64(d)
	}
	return result, nil
}
