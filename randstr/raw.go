package randstr

import (
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// maxBound is the largest length or code point accepted from raw input.
const maxBound = math.MaxInt32

// Raw is the loosely typed form of Options, keyed by option name:
//
//	random               func() float64, RandomFunc or any value with a Float64() float64 method
//	length               number, or a list of one or two numbers
//	chars                non-empty string, or a list of two numbers
//	acceptable           func(rune) bool, AcceptFunc or func(string) bool
//	replacer             func(rune) string, ReplaceFunc or func(string) string
//	includeControlChars  bool
//	maxAttempts          number
//
// Numbers may be any integer or float type, json.Number or a numeric string.
// Fractional bounds are rounded inward (lower bound up, upper bound down).
// Unknown keys are ignored.
type Raw map[string]any

// NormalizeRaw converts raw to Options and normalizes them.
func NormalizeRaw(raw Raw) (*Config, error) {
	opts, err := raw.Options()
	if err != nil {
		return nil, err
	}

	return Normalize(opts)
}

// Options checks the type and range of every present key and returns the typed
// options. Absent or nil keys are left at their zero value.
func (raw Raw) Options() (*Options, error) {
	var (
		opts Options
		err  error
	)

	if opts.Random, err = parseRandom(raw[optRandom]); err != nil {
		return nil, err
	}

	if opts.Length, err = parseLength(raw[optLength]); err != nil {
		return nil, err
	}

	if opts.Chars, err = parseChars(raw[optChars]); err != nil {
		return nil, err
	}

	if opts.Acceptable, err = parseAcceptable(raw[optAcceptable]); err != nil {
		return nil, err
	}

	if opts.Replacer, err = parseReplacer(raw[optReplacer]); err != nil {
		return nil, err
	}

	// only an explicit true enables control characters
	opts.IncludeControlChars, _ = raw[optIncludeControlChars].(bool)

	if opts.MaxAttempts, err = parseMaxAttempts(raw[optMaxAttempts]); err != nil {
		return nil, err
	}

	return &opts, nil
}

func parseRandom(v any) (RandomFunc, error) {
	switch f := v.(type) {
	case nil:
		return nil, nil
	case RandomFunc:
		return f, nil
	case func() float64:
		return f, nil
	case interface{ Float64() float64 }:
		return f.Float64, nil
	default:
		return nil, optionErrorf(optRandom, "must be a function, got %T", v)
	}
}

func parseLength(v any) (Length, error) {
	if v == nil {
		return nil, nil
	}

	values, isList := toList(v)
	if !isList {
		n, err := toNumber(optLength, "value", v)
		if err != nil {
			return nil, err
		}

		if err = checkBounds(optLength, n, n); err != nil {
			return nil, err
		}

		lo, _ := snap(n, n)

		return Fixed(lo), nil
	}

	switch len(values) {
	case 0:
		return nil, optionErrorf(optLength, "must have at least one number")
	case 1, 2:
	default:
		return nil, optionErrorf(optLength, "must have at most two numbers, got %d", len(values))
	}

	from, err := toNumber(optLength, "first value", values[0])
	if err != nil {
		return nil, err
	}

	to := float64(DefaultMaxLength)
	if len(values) > 1 {
		if to, err = toNumber(optLength, "second value", values[1]); err != nil {
			return nil, err
		}
	}

	if err = checkBounds(optLength, from, to); err != nil {
		return nil, err
	}

	lo, hi := snap(from, to)

	return Range{Min: lo, Max: hi}, nil
}

func parseChars(v any) (CharSource, error) {
	switch c := v.(type) {
	case nil:
		return nil, nil
	case string:
		if c == "" {
			return nil, optionErrorf(optChars, "must have at least one character")
		}

		return Chars(c), nil
	case Sequence:
		return c, nil
	case Interval:
		return c, nil
	}

	values, isList := toList(v)
	if !isList {
		return nil, optionErrorf(optChars, "must be a string or a list of two numbers, got %T", v)
	}

	if len(values) != 2 { //nolint:mnd
		return nil, optionErrorf(optChars, "must have exactly two numbers, got %d", len(values))
	}

	lo, err := toNumber(optChars, "first value", values[0])
	if err != nil {
		return nil, err
	}

	hi, err := toNumber(optChars, "second value", values[1])
	if err != nil {
		return nil, err
	}

	if err = checkBounds(optChars, lo, hi); err != nil {
		return nil, err
	}

	first, last := snap(lo, hi)

	return Interval{Lo: first, Hi: last}, nil
}

func parseAcceptable(v any) (AcceptFunc, error) {
	switch f := v.(type) {
	case nil:
		return nil, nil
	case AcceptFunc:
		return f, nil
	case func(rune) bool:
		return f, nil
	case func(string) bool:
		if f == nil {
			return nil, nil
		}

		return func(r rune) bool { return f(string(r)) }, nil
	default:
		return nil, optionErrorf(optAcceptable, "must be a function, got %T", v)
	}
}

func parseReplacer(v any) (ReplaceFunc, error) {
	switch f := v.(type) {
	case nil:
		return nil, nil
	case ReplaceFunc:
		return f, nil
	case func(rune) string:
		return f, nil
	case func(string) string:
		if f == nil {
			return nil, nil
		}

		return func(r rune) string { return f(string(r)) }, nil
	default:
		return nil, optionErrorf(optReplacer, "must be a function, got %T", v)
	}
}

func parseMaxAttempts(v any) (int, error) {
	if v == nil {
		return 0, nil
	}

	n, err := toNumber(optMaxAttempts, "value", v)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, optionErrorf(optMaxAttempts, "%v must be greater than or equal to zero", n)
	}

	return int(math.Floor(n)), nil
}

// toList returns the elements of a slice or array value.
func toList(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return list, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}

	return list, true
}

// toNumber converts a raw numeric value. Booleans, blank strings, NaN and
// infinities are not numbers.
func toNumber(option, what string, v any) (float64, error) {
	switch s := v.(type) {
	case nil, bool:
		return 0, optionErrorf(option, "%s must be a number, got %T", what, v)
	case string:
		if s = strings.TrimSpace(s); s == "" {
			return 0, optionErrorf(option, "%s must be a number, got an empty string", what)
		}

		v = s
	}

	n, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, optionErrorf(option, "%s must be a number, got %v", what, v)
	}

	if n > maxBound {
		return 0, optionErrorf(option, "%s %v must not be greater than %d", what, n, maxBound)
	}

	return n, nil
}

// snap rounds an interval inward to integers. When no integer lies inside, the
// upper bound is raised to the lower one, which matches what the draw formula
// from + floor(r * (to - from + 1)) yields for such an interval.
func snap(lo, hi float64) (int, int) {
	first := int(math.Ceil(lo))
	last := int(math.Floor(hi))

	if last < first {
		last = first
	}

	return first, last
}
