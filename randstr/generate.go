package randstr

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Rejections counts discarded candidates by cause.
type Rejections struct {
	Control      int `json:"control"`      // control code point while IncludeControlChars is off
	Unacceptable int `json:"unacceptable"` // refused by Acceptable
	Overflow     int `json:"overflow"`     // replacement longer than the remaining length
}

// Total returns the number of discarded candidates.
func (r Rejections) Total() int {
	return r.Control + r.Unacceptable + r.Overflow
}

// Stats describes a single generation.
type Stats struct {
	Target   int // length drawn from [From, To]
	Attempts int // committed positions
	Length   int // characters in the result
	Rejected Rejections
}

// Generate normalizes opts and generates a string.
func Generate(opts *Options) (string, error) {
	cfg, err := Normalize(opts)
	if err != nil {
		return "", err
	}

	return cfg.Generate()
}

// GenerateRaw normalizes raw and generates a string.
func GenerateRaw(raw Raw) (string, error) {
	cfg, err := NormalizeRaw(raw)
	if err != nil {
		return "", err
	}

	return cfg.Generate()
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(opts *Options) string {
	s, err := Generate(opts)
	if err != nil {
		panic("randstr: " + err.Error())
	}

	return s
}

// Generate returns a string built from c. The only possible error is
// ErrTooManyAttempts, when c.MaxAttempts is set.
func (c *Config) Generate() (string, error) {
	s, _, err := c.GenerateStats()
	return s, err
}

// GenerateStats is Generate returning the statistics of the call as well.
//
// A target length is drawn once from [From, To]. Each loop iteration draws a
// candidate, which is discarded when it is a control character (unless allowed),
// when Acceptable refuses it, or when its replacement would make the output longer
// than the target. Otherwise the candidate, or its replacement, is appended and the
// loop advances. The loop runs while attempts < target && committed < target, so an
// empty replacement advances attempts without growing the output.
func (c *Config) GenerateStats() (string, Stats, error) {
	var stats Stats

	if c.To == 0 {
		return "", stats, nil
	}

	target := randomIntBetween(c.Random, c.From, c.To)
	stats.Target = target

	var (
		out       strings.Builder
		attempts  int // positions advanced
		committed int // characters in out
	)

	for attempts < target && committed < target {
		if c.MaxAttempts > 0 && stats.Rejected.Total() >= c.MaxAttempts {
			stats.Attempts, stats.Length = attempts, committed
			return "", stats, ErrTooManyAttempts
		}

		code := c.candidate()

		if !c.IncludeControlChars && IsControl(code) {
			stats.Rejected.Control++
			continue
		}

		chr := toRune(code)

		if c.Acceptable != nil && !c.Acceptable(chr) {
			stats.Rejected.Unacceptable++
			continue
		}

		unit := string(chr)
		if c.Replacer != nil {
			unit = c.Replacer(chr)
			if committed+utf8.RuneCountInString(unit) > target {
				stats.Rejected.Overflow++
				continue
			}
		}

		out.WriteString(unit)
		committed += utf8.RuneCountInString(unit)
		attempts++
	}

	stats.Attempts, stats.Length = attempts, committed

	return out.String(), stats, nil
}

// candidate draws a code point from the configured source. An index drawn
// outside a sequence, which only a source returning values outside [0,1) can
// produce, yields -1 and is therefore treated as a control character.
func (c *Config) candidate() int {
	switch chars := c.Chars.(type) {
	case Sequence:
		i := randomIntBetween(c.Random, 0, len(chars)-1)
		if i < 0 || i >= len(chars) {
			return -1
		}

		return int(chars[i])
	case Interval:
		return randomIntBetween(c.Random, chars.Lo, chars.Hi)
	default:
		return randomIntBetween(c.Random, DefaultChars.Lo, DefaultChars.Hi)
	}
}

// randomIntBetween draws an integer in [min, max] as
// min + floor(random() * (max - min + 1)).
func randomIntBetween(random RandomFunc, min, max int) int {
	return min + int(math.Floor(random()*float64(max-min+1)))
}

// toRune maps a code point to a rune. Values outside the rune range become
// utf8.RuneError.
func toRune(code int) rune {
	if code < 0 || code > utf8.MaxRune {
		return utf8.RuneError
	}

	return rune(code)
}
