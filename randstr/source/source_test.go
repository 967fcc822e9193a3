package source_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiagodp/better-randstr/randstr/source"
)

const draws = 10000

func assertUnitInterval(t *testing.T, random func() float64) {
	t.Helper()

	for i := 0; i < draws; i++ {
		v := random()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSourcesStayInUnitInterval(t *testing.T) {
	tests := []struct {
		name   string
		random func() float64
	}{
		{"default", source.Default()},
		{"crypto", source.Crypto()},
		{"seeded", source.Seeded(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertUnitInterval(t, tt.random)
		})
	}
}

func TestCryptoIsNotConstant(t *testing.T) {
	random := source.Crypto()
	first := random()

	for i := 0; i < 100; i++ {
		if random() != first {
			return
		}
	}

	t.Fatal("crypto source returned the same value 100 times")
}

func TestSeededIsReproducible(t *testing.T) {
	a, b, c := source.Seeded(1), source.Seeded(1), source.Seeded(2)

	var diverged bool

	for i := 0; i < 100; i++ {
		va, vb, vc := a(), b(), c()
		assert.Equal(t, va, vb)

		if va != vc {
			diverged = true
		}
	}

	assert.True(t, diverged, "different seeds should produce different sequences")
}

func TestSequenceCycles(t *testing.T) {
	random := source.Sequence(0.1, 0.2, 0.3)

	var got []float64
	for i := 0; i < 7; i++ {
		got = append(got, random())
	}

	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.1, 0.2, 0.3, 0.1}, got)
}

func TestSequenceWithoutValuesPanics(t *testing.T) {
	assert.Panics(t, func() { source.Sequence() })
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    source.Kind
		wantErr bool
	}{
		{"", false},
		{source.KindMath, false},
		{source.KindCrypto, false},
		{source.KindSeeded, false},
		{"dice", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			random, err := source.New(tt.kind, 3)
			if tt.wantErr {
				require.ErrorIs(t, err, source.ErrUnknownKind)
				assert.Nil(t, random)

				return
			}

			require.NoError(t, err)
			assertUnitInterval(t, random)
		})
	}
}

func TestNewSeededUsesSeed(t *testing.T) {
	a, err := source.New(source.KindSeeded, 99)
	require.NoError(t, err)

	b := source.Seeded(99)
	assert.Equal(t, b(), a())
}

func TestConcurrentUse(t *testing.T) {
	sources := []func() float64{source.Crypto(), source.Seeded(5), source.Sequence(0.25, 0.75)}

	var wg sync.WaitGroup

	for _, random := range sources {
		for i := 0; i < 8; i++ {
			wg.Add(1)

			go func(random func() float64) {
				defer wg.Done()

				for j := 0; j < 500; j++ {
					v := random()
					if v < 0 || v >= 1 {
						t.Errorf("value %v out of range", v)
						return
					}
				}
			}(random)
		}
	}

	wg.Wait()
}
