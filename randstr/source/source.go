package source

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"sync"

	"github.com/pkg/errors"
)

// Kind names a source for configuration files and flags.
type Kind string

const (
	// KindMath selects Default.
	KindMath Kind = "math"
	// KindCrypto selects Crypto.
	KindCrypto Kind = "crypto"
	// KindSeeded selects Seeded.
	KindSeeded Kind = "seeded"
)

const (
	// bufLen is the number of random bytes read from crypto/rand at once.
	bufLen = 512

	// float64Bytes is the number of bytes consumed per float.
	float64Bytes = 8

	// mantissaBits is the precision of a float64 in [0,1).
	mantissaBits = 53

	// pcgStream is mixed into the seed to derive the second PCG word.
	pcgStream = 0x9e3779b97f4a7c15
)

// New returns the source of the given kind. seed is only used by KindSeeded.
// An empty kind selects KindMath.
func New(kind Kind, seed uint64) (func() float64, error) {
	switch kind {
	case "", KindMath:
		return Default(), nil
	case KindCrypto:
		return Crypto(), nil
	case KindSeeded:
		return Seeded(seed), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "kind %q", kind)
	}
}

// Default returns the process wide math/rand/v2 generator.
func Default() func() float64 {
	return mrand.Float64
}

// Seeded returns a deterministic PCG generator. Two sources with the same seed
// produce the same sequence when called in the same order.
func Seeded(seed uint64) func() float64 {
	var (
		mu sync.Mutex
		r  = mrand.New(mrand.NewPCG(seed, seed^pcgStream)) //nolint:gosec
	)

	return func() float64 {
		mu.Lock()
		defer mu.Unlock()

		return r.Float64()
	}
}

// Sequence returns a source that yields values in order and then starts over.
// It is meant for tests that need exact draws. Values are returned as given,
// without checking that they lie in [0,1).
func Sequence(values ...float64) func() float64 {
	if len(values) == 0 {
		panic("source: Sequence needs at least one value")
	}

	var (
		mu sync.Mutex
		i  int
	)

	return func() float64 {
		mu.Lock()
		defer mu.Unlock()

		v := values[i]
		i = (i + 1) % len(values)

		return v
	}
}

// cryptoSource turns crypto/rand bytes into floats, reading them in batches.
type cryptoSource struct {
	mu  sync.Mutex
	buf []byte
	pos int // next unread byte in buf
}

// Crypto returns a source backed by crypto/rand.
func Crypto() func() float64 {
	c := &cryptoSource{buf: make([]byte, bufLen), pos: bufLen}
	return c.Float64
}

// Float64 uses the top 53 bits of 8 random bytes so that every value is an exact
// multiple of 2^-53 in [0,1).
func (c *cryptoSource) Float64() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pos+float64Bytes > len(c.buf) {
		if _, err := rand.Read(c.buf); err != nil {
			panic("source: error reading random bytes: " + err.Error())
		}

		c.pos = 0
	}

	u := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += float64Bytes

	return float64(u>>(64-mantissaBits)) / (1 << mantissaBits)
}
