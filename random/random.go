// Package random - deterministic random helpers: coin tosses, weighted
// booleans, characters from fixed alphabets, strings and shuffles.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: a single constructor; no time-based sources hidden anywhere.
//   - Safety: no panics on user input; only sentinel errors.
//
// Concurrency:
//   - A Source wraps math/rand.Rand, which is NOT goroutine-safe. Do not share
//     a Source across goroutines; use Derive to create independent streams.
package random

import (
	"errors"
	"math/rand"
)

// Alphabets used by the character helpers.
const (
	ASCII     = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

var (
	// ErrProbability indicates a probability outside [0, 1].
	ErrProbability = errors.New("random: probability must be in [0, 1]")

	// ErrEmptyAlphabet indicates String was given no characters to draw from.
	ErrEmptyAlphabet = errors.New("random: alphabet is empty")
)

// Source draws random values from a seeded stream.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New returns a deterministic Source.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func New(seed int64) *Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the effective seed of s.
func (s *Source) Seed() int64 { return s.seed }

// Derive creates an independent deterministic stream identified by stream.
// It consumes one value from s so that repeated derivations with the same
// stream id still differ.
func (s *Source) Derive(stream uint64) *Source {
	return New(deriveSeed(s.r.Int63(), stream))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	seed := int64(x)
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// CoinToss returns true or false with equal probability.
func (s *Source) CoinToss() bool {
	return s.r.Float64() < 0.5
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) (bool, error) {
	if !(p >= 0 && p <= 1) {
		return false, ErrProbability
	}
	return s.r.Float64() < p, nil
}

// ASCIIChar returns a random printable ASCII character (space through '~').
func (s *Source) ASCIIChar() byte { return s.pick(ASCII) }

// Digit returns a random character in '0'..'9'.
func (s *Source) Digit() byte { return s.pick(Digits) }

// Lower returns a random lowercase latin letter.
func (s *Source) Lower() byte { return s.pick(Lowercase) }

// Upper returns a random uppercase latin letter.
func (s *Source) Upper() byte { return s.pick(Uppercase) }

// Letter returns a random latin letter, either case with equal probability.
func (s *Source) Letter() byte {
	if s.CoinToss() {
		return s.Lower()
	}
	return s.Upper()
}

// String returns n characters drawn uniformly from alphabet (bytes).
// n <= 0 yields "".
func (s *Source) String(n int, alphabet string) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	if n <= 0 {
		return "", nil
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = s.pick(alphabet)
	}
	return string(b), nil
}

// pick returns a uniformly chosen byte of a non-empty alphabet.
func (s *Source) pick(alphabet string) byte {
	return alphabet[s.r.Intn(len(alphabet))]
}

// Shuffle permutes a in place with Fisher–Yates.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](s *Source, a []T) {
	for i := len(a) - 1; i > 0; i-- {
		j := s.r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
