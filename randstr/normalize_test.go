package randstr_test

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiagodp/better-randstr/randstr"
	"github.com/thiagodp/better-randstr/randstr/source"
)

func TestNormalizeDefaults(t *testing.T) {
	cfg, err := randstr.Normalize(&randstr.Options{Random: source.Sequence(0.5)})
	require.NoError(t, err)

	// floor(0.5 * 101)
	assert.Equal(t, 50, cfg.From)
	assert.Equal(t, 50, cfg.To)
	assert.Equal(t, randstr.DefaultChars, cfg.Chars)
	assert.Nil(t, cfg.Acceptable)
	assert.Nil(t, cfg.Replacer)
	assert.False(t, cfg.IncludeControlChars)
	assert.Zero(t, cfg.MaxAttempts)
}

func TestNormalizeNilOptions(t *testing.T) {
	cfg, err := randstr.Normalize(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Random)
	assert.Equal(t, cfg.From, cfg.To)
	assert.GreaterOrEqual(t, cfg.From, 0)
	assert.LessOrEqual(t, cfg.To, randstr.DefaultMaxLength)
}

func TestNormalizeLength(t *testing.T) {
	tests := []struct {
		name     string
		length   randstr.Length
		wantFrom int
		wantTo   int
		wantErr  bool
	}{
		{"fixed", randstr.Fixed(7), 7, 7, false},
		{"fixed zero", randstr.Fixed(0), 0, 0, false},
		{"range", randstr.Range{Min: 2, Max: 60}, 2, 60, false},
		{"at least", randstr.AtLeast(10), 10, 100, false},
		{"at least above default max", randstr.AtLeast(101), 0, 0, true},
		{"negative fixed", randstr.Fixed(-1), 0, 0, true},
		{"negative min", randstr.Range{Min: -1, Max: 5}, 0, 0, true},
		{"negative max", randstr.Range{Min: 0, Max: -5}, 0, 0, true},
		{"inverted", randstr.Range{Min: 6, Max: 5}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := randstr.Normalize(&randstr.Options{Length: tt.length})
			if tt.wantErr {
				require.ErrorIs(t, err, randstr.ErrInvalidOption)

				var optErr *randstr.OptionError
				require.True(t, errors.As(err, &optErr))
				assert.Equal(t, "length", optErr.Option)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, cfg.From)
			assert.Equal(t, tt.wantTo, cfg.To)
		})
	}
}

func TestNormalizeChars(t *testing.T) {
	tests := []struct {
		name    string
		chars   randstr.CharSource
		want    randstr.CharSource
		wantErr bool
	}{
		{"sequence", randstr.Chars("ABC"), randstr.Sequence{'A', 'B', 'C'}, false},
		{"interval", randstr.Interval{Lo: 65, Hi: 90}, randstr.Interval{Lo: 65, Hi: 90}, false},
		{"empty sequence", randstr.Chars(""), nil, true},
		{"nil sequence", randstr.Sequence(nil), nil, true},
		{"inverted interval", randstr.Interval{Lo: 90, Hi: 65}, nil, true},
		{"negative interval", randstr.Interval{Lo: -1, Hi: 65}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := randstr.Normalize(&randstr.Options{Length: randstr.Fixed(1), Chars: tt.chars})
			if tt.wantErr {
				require.ErrorIs(t, err, randstr.ErrInvalidOption)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Chars)
		})
	}
}

func TestNormalizeNegativeMaxAttempts(t *testing.T) {
	_, err := randstr.Normalize(&randstr.Options{MaxAttempts: -1})
	require.ErrorIs(t, err, randstr.ErrInvalidOption)
}

func TestNormalizeRawValid(t *testing.T) {
	tests := []struct {
		name     string
		raw      randstr.Raw
		wantFrom int
		wantTo   int
		wantSrc  randstr.CharSource
	}{
		{"scalar int", randstr.Raw{"length": 10}, 10, 10, randstr.DefaultChars},
		{"scalar float", randstr.Raw{"length": 10.0}, 10, 10, randstr.DefaultChars},
		{"scalar string", randstr.Raw{"length": " 12 "}, 12, 12, randstr.DefaultChars},
		{"scalar json number", randstr.Raw{"length": json.Number("8")}, 8, 8, randstr.DefaultChars},
		{"scalar fractional", randstr.Raw{"length": 2.5}, 3, 3, randstr.DefaultChars},
		{"one element", randstr.Raw{"length": []int{10}}, 10, 100, randstr.DefaultChars},
		{"two elements", randstr.Raw{"length": []any{2, "60"}}, 2, 60, randstr.DefaultChars},
		{"fractional range", randstr.Raw{"length": []float64{1.5, 4.5}}, 2, 4, randstr.DefaultChars},
		{"fractional range without integer", randstr.Raw{"length": []float64{2.2, 2.8}}, 3, 3, randstr.DefaultChars},
		{"array", randstr.Raw{"length": [2]int{0, 50}}, 0, 50, randstr.DefaultChars},
		{"chars string", randstr.Raw{"length": 1, "chars": "xyz"}, 1, 1, randstr.Sequence("xyz")},
		{"chars interval", randstr.Raw{"length": 1, "chars": []int{65, 90}}, 1, 1, randstr.Interval{Lo: 65, Hi: 90}},
		{"chars fractional interval", randstr.Raw{"length": 1, "chars": []float64{65.2, 65.8}}, 1, 1, randstr.Interval{Lo: 66, Hi: 66}},
		{"chars typed interval", randstr.Raw{"length": 1, "chars": randstr.Interval{Lo: 1, Hi: 2}}, 1, 1, randstr.Interval{Lo: 1, Hi: 2}},
		{"nil values use defaults", randstr.Raw{"length": 3, "chars": nil, "random": nil, "replacer": nil}, 3, 3, randstr.DefaultChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := randstr.NormalizeRaw(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, cfg.From)
			assert.Equal(t, tt.wantTo, cfg.To)
			assert.Equal(t, tt.wantSrc, cfg.Chars)
		})
	}
}

func TestNormalizeRawInvalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    randstr.Raw
		option string
	}{
		{"length with three numbers", randstr.Raw{"length": []int{1, 2, 3}}, "length"},
		{"length empty list", randstr.Raw{"length": []int{}}, "length"},
		{"length non-numeric element", randstr.Raw{"length": []any{1, "a"}}, "length"},
		{"length non-numeric first element", randstr.Raw{"length": []any{"a"}}, "length"},
		{"length nil element", randstr.Raw{"length": []any{nil}}, "length"},
		{"length non-numeric scalar", randstr.Raw{"length": "ten"}, "length"},
		{"length boolean", randstr.Raw{"length": true}, "length"},
		{"length blank string", randstr.Raw{"length": "  "}, "length"},
		{"length NaN", randstr.Raw{"length": math.NaN()}, "length"},
		{"length infinite", randstr.Raw{"length": math.Inf(1)}, "length"},
		{"length too large", randstr.Raw{"length": 1e12}, "length"},
		{"length negative scalar", randstr.Raw{"length": -1}, "length"},
		{"length negative fraction", randstr.Raw{"length": -0.5}, "length"},
		{"length inverted", randstr.Raw{"length": []int{5, 4}}, "length"},
		{"length inverted fraction", randstr.Raw{"length": []float64{2.8, 2.2}}, "length"},
		{"length map", randstr.Raw{"length": map[string]int{"min": 1}}, "length"},
		{"chars with three numbers", randstr.Raw{"chars": []int{1, 2, 3}}, "chars"},
		{"chars with one number", randstr.Raw{"chars": []int{1}}, "chars"},
		{"chars empty string", randstr.Raw{"chars": ""}, "chars"},
		{"chars inverted", randstr.Raw{"chars": []int{90, 65}}, "chars"},
		{"chars negative", randstr.Raw{"chars": []int{-1, 65}}, "chars"},
		{"chars non-numeric", randstr.Raw{"chars": []any{"a", "z"}}, "chars"},
		{"chars number", randstr.Raw{"chars": 65}, "chars"},
		{"random not a function", randstr.Raw{"random": 0.5}, "random"},
		{"random wrong signature", randstr.Raw{"random": func() int { return 1 }}, "random"},
		{"acceptable not a function", randstr.Raw{"acceptable": "yes"}, "acceptable"},
		{"acceptable wrong signature", randstr.Raw{"acceptable": func(rune) string { return "" }}, "acceptable"},
		{"replacer not a function", randstr.Raw{"replacer": 42}, "replacer"},
		{"max attempts negative", randstr.Raw{"maxAttempts": -3}, "maxAttempts"},
		{"max attempts non-numeric", randstr.Raw{"maxAttempts": "many"}, "maxAttempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := randstr.NormalizeRaw(tt.raw)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, randstr.ErrInvalidOption)

			var optErr *randstr.OptionError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.option, optErr.Option)
			assert.Contains(t, err.Error(), tt.option)
		})
	}
}

func TestNormalizeRawCallbacks(t *testing.T) {
	var (
		accepted []string
		replaced []string
	)

	cfg, err := randstr.NormalizeRaw(randstr.Raw{
		"random": rand.New(rand.NewPCG(1, 2)), //nolint:gosec
		"length": 4,
		"chars":  "a",
		"acceptable": func(s string) bool {
			accepted = append(accepted, s)
			return true
		},
		"replacer": func(s string) string {
			replaced = append(replaced, s)
			return s + "!"
		},
		"includeControlChars": "true",
		"maxAttempts":         "10",
	})
	require.NoError(t, err)
	assert.False(t, cfg.IncludeControlChars, "only a boolean true enables control characters")
	assert.Equal(t, 10, cfg.MaxAttempts)

	s, err := cfg.Generate()
	require.NoError(t, err)
	assert.Equal(t, "a!a!", s)
	assert.Equal(t, []string{"a", "a"}, accepted)
	assert.Equal(t, []string{"a", "a"}, replaced)
}

func TestNormalizeRawTypedFunctions(t *testing.T) {
	cfg, err := randstr.NormalizeRaw(randstr.Raw{
		"random":              randstr.RandomFunc(source.Sequence(0)),
		"length":              2,
		"chars":               "ab",
		"acceptable":          randstr.AcceptFunc(randstr.IsLowerAlpha),
		"replacer":            randstr.ReplaceFunc(func(r rune) string { return string(r - 32) }),
		"includeControlChars": true,
	})
	require.NoError(t, err)
	assert.True(t, cfg.IncludeControlChars)

	s, err := cfg.Generate()
	require.NoError(t, err)
	assert.Equal(t, "AA", s)
}

func TestRawOptionsNil(t *testing.T) {
	opts, err := randstr.Raw(nil).Options()
	require.NoError(t, err)
	assert.Equal(t, &randstr.Options{}, opts)
}
