// Package shorturl turns non-negative integers into short reversible
// identifiers, the kind used in URL-shortener paths. Sequential ids are first
// scrambled by a bit permutation so neighbouring inputs do not encode to
// neighbouring strings, then written in base-N over a configurable alphabet.
package shorturl

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// DefaultAlphabet leaves out characters that read ambiguously in URLs
	// (0/o, 1/l/i).
	DefaultAlphabet  = "mn6j2c4rv8bpygw95z7hsdaetxuk3fq"
	DefaultBlockSize = 24
	MinLength        = 5
)

var (
	ErrAlphabetTooShort   = errors.New("alphabet must contain at least two characters")
	ErrInvalidPermutation = errors.New("mapping is not a permutation of its bit positions")
	ErrInvalidCharacter   = errors.New("invalid character")
)

// Encoder holds one encoding configuration: the digit alphabet, the number of
// low bits subject to permutation, and the permutation table itself. An
// Encoder is immutable once built and safe to share between goroutines.
type Encoder struct {
	alphabet  string
	blockSize uint
	mask      uint64
	mapping   []uint
	index     [256]int16
}

// NewEncoder builds an Encoder with the identity permutation table for
// blockSize bits. The alphabet must contain at least two characters; its
// ordering defines digit values.
func NewEncoder(alphabet string, blockSize uint) (*Encoder, error) {
	mapping := make([]uint, blockSize)
	for i := range mapping {
		mapping[i] = uint(i)
	}
	return newEncoder(alphabet, mapping)
}

// NewEncoderWithPermutation builds an Encoder with a caller-supplied bit
// permutation. The block size is len(mapping), and mapping must contain every
// position in [0, len(mapping)) exactly once. The slice is copied.
func NewEncoderWithPermutation(alphabet string, mapping []uint) (*Encoder, error) {
	seen := make([]bool, len(mapping))
	for _, b := range mapping {
		if b >= uint(len(mapping)) || seen[b] {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPermutation, mapping)
		}
		seen[b] = true
	}
	m := make([]uint, len(mapping))
	copy(m, mapping)
	return newEncoder(alphabet, m)
}

func newEncoder(alphabet string, mapping []uint) (*Encoder, error) {
	if len(alphabet) < 2 {
		return nil, ErrAlphabetTooShort
	}
	blockSize := uint(len(mapping))
	e := &Encoder{
		alphabet:  alphabet,
		blockSize: blockSize,
		mask:      1<<blockSize - 1,
		mapping:   mapping,
	}
	for i := range e.index {
		e.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		if e.index[alphabet[i]] < 0 {
			e.index[alphabet[i]] = int16(i)
		}
	}
	return e, nil
}

// RandomPermutation returns a permutation of [0, blockSize) shuffled with the
// given seed. The same seed always yields the same table, so a table derived
// here can be reconstructed instead of stored.
func RandomPermutation(blockSize uint, seed int64) []uint {
	mapping := make([]uint, blockSize)
	for i := range mapping {
		mapping[i] = uint(i)
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(mapping), func(i, j int) {
		mapping[i], mapping[j] = mapping[j], mapping[i]
	})
	return mapping
}

// EncodeURL encodes n as a short identifier of at least minLength characters.
func (e *Encoder) EncodeURL(n uint64, minLength int) string {
	return e.pad(e.enbase(e.permute(n)), minLength)
}

// DecodeURL is the inverse of EncodeURL.
func (e *Encoder) DecodeURL(s string) (uint64, error) {
	x, err := e.debase(s)
	if err != nil {
		return 0, err
	}
	return e.unpermute(x), nil
}

var defaultEncoder = func() *Encoder {
	e, err := NewEncoder(DefaultAlphabet, DefaultBlockSize)
	if err != nil {
		panic(err)
	}
	return e
}()

// EncodeURL encodes n with the default alphabet and block size.
func EncodeURL(n uint64, minLength int) string {
	return defaultEncoder.EncodeURL(n, minLength)
}

// DecodeURL decodes an identifier produced with the default configuration.
func DecodeURL(s string) (uint64, error) {
	return defaultEncoder.DecodeURL(s)
}
