package randstr

import (
	"github.com/thiagodp/better-randstr/randstr/source"
)

const (
	optRandom              = "random"
	optLength              = "length"
	optChars               = "chars"
	optAcceptable          = "acceptable"
	optReplacer            = "replacer"
	optIncludeControlChars = "includeControlChars"
	optMaxAttempts         = "maxAttempts"
)

// Normalize fills the defaults of opts and validates it. A nil opts selects every
// default. An absent length is drawn from [0, DefaultMaxLength] with the resolved
// random source, so two configs built from the same options may differ.
func Normalize(opts *Options) (*Config, error) {
	var o Options
	if opts != nil {
		o = *opts
	}

	cfg := &Config{
		Random:              o.Random,
		Acceptable:          o.Acceptable,
		Replacer:            o.Replacer,
		IncludeControlChars: o.IncludeControlChars,
		MaxAttempts:         o.MaxAttempts,
	}

	if cfg.Random == nil {
		cfg.Random = source.Default()
	}

	var err error

	if cfg.From, cfg.To, err = resolveLength(o.Length, cfg.Random); err != nil {
		return nil, err
	}

	if cfg.Chars, err = resolveChars(o.Chars); err != nil {
		return nil, err
	}

	if cfg.MaxAttempts < 0 {
		return nil, optionErrorf(optMaxAttempts, "%d must be greater than or equal to zero", cfg.MaxAttempts)
	}

	return cfg, nil
}

func resolveLength(length Length, random RandomFunc) (int, int, error) {
	var from, to int

	switch l := length.(type) {
	case nil:
		from = randomIntBetween(random, 0, DefaultMaxLength)
		to = from
	case Fixed:
		from, to = int(l), int(l)
	case Range:
		from, to = l.Min, l.Max
	default:
		return 0, 0, optionErrorf(optLength, "unsupported length type %T", length)
	}

	return from, to, checkBounds(optLength, float64(from), float64(to))
}

func resolveChars(chars CharSource) (CharSource, error) {
	switch c := chars.(type) {
	case nil:
		return DefaultChars, nil
	case Sequence:
		if len(c) == 0 {
			return nil, optionErrorf(optChars, "must have at least one character")
		}

		return c, nil
	case Interval:
		if err := checkBounds(optChars, float64(c.Lo), float64(c.Hi)); err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, optionErrorf(optChars, "unsupported character source type %T", chars)
	}
}

// checkBounds validates a closed interval given as its lower and upper bound.
func checkBounds(option string, lo, hi float64) error {
	if lo < 0 {
		return optionErrorf(option, "lower bound %v must be greater than or equal to zero", lo)
	}

	if hi < 0 {
		return optionErrorf(option, "upper bound %v must be greater than or equal to zero", hi)
	}

	if lo > hi {
		return optionErrorf(option, "lower bound %v must not be greater than upper bound %v", lo, hi)
	}

	return nil
}
