package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thiagodp/better-randstr/internal/daemon"
	"github.com/thiagodp/better-randstr/internal/metrics"
	"github.com/thiagodp/better-randstr/internal/preset"
	"github.com/thiagodp/better-randstr/randstr"
	"github.com/thiagodp/better-randstr/randstr/source"
)

// EnvPrefix prefixes the environment variables read by the generate command.
const EnvPrefix = "RANDSTR"

const (
	flagLength      = "length"
	flagChars       = "chars"
	flagRange       = "range"
	flagAccept      = "accept"
	flagExclude     = "exclude"
	flagReplacer    = "replacer"
	flagControl     = "control"
	flagCount       = "count"
	flagProfile     = "profile"
	flagSource      = "source"
	flagSeed        = "seed"
	flagMaxAttempts = "max-attempts"
	flagMetricsFile = "metrics-file"
	flagJSON        = "json"
)

// generated is one line of the --json output.
type generated struct {
	Value    string             `json:"value"`
	Target   int                `json:"target"`
	Attempts int                `json:"attempts"`
	Rejected randstr.Rejections `json:"rejected"`
}

func newGenerateCmd(st *state) *cobra.Command {
	v := viper.New()

	generateCmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print random strings",
		Long: `Print random strings, one per line.

Every flag can also be set with an environment variable, e.g. RANDSTR_LENGTH=8,16.
Flags given together with --profile override the profile values.`,
		Example: `  randstr generate --length 16 --chars ABCDEF0123456789
  randstr generate --length 8,12 --range 33,126 --exclude "'\"" --count 5
  randstr generate --profile password --source crypto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.generate(cmd.OutOrStdout(), v)
		},
	}

	f := generateCmd.Flags()
	f.String(flagLength, "", `length as "n", "min,max" or "min,"`)
	f.String(flagChars, "", "characters to draw from")
	f.String(flagRange, "", `code point interval "lo,hi" to draw from`)
	f.String(flagAccept, "", "comma separated predicates a character must match: "+strings.Join(preset.AcceptableNames(), ", "))
	f.String(flagExclude, "", "characters never accepted")
	f.String(flagReplacer, "", "replacer applied to every character: "+strings.Join(preset.ReplacerNames(), ", "))
	f.Bool(flagControl, false, "allow control characters")
	f.Int(flagCount, 1, "number of strings")
	f.String(flagProfile, "", "named profile from the configuration")
	f.String(flagSource, "", "random source: math, crypto or seeded (default from config)")
	f.Uint64(flagSeed, 0, "seed of the seeded source (default from config)")
	f.Int(flagMaxAttempts, 0, "cap on rejected candidates per string (default from config)")
	f.String(flagMetricsFile, "", "write prometheus metrics of this run to a textfile")
	f.Bool(flagJSON, false, "print one JSON object per string with its statistics")

	generateCmd.MarkFlagsMutuallyExclusive(flagChars, flagRange)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}

	return generateCmd
}

// spec builds the generation spec from the profile and the flags.
func (st *state) spec(v *viper.Viper) (preset.Spec, error) {
	spec := preset.Spec{
		Length:              preset.ParseBounds(v.GetString(flagLength)),
		Accept:              preset.ParseList(v.GetString(flagAccept)),
		Exclude:             v.GetString(flagExclude),
		Replacer:            v.GetString(flagReplacer),
		IncludeControlChars: v.GetBool(flagControl),
		MaxAttempts:         v.GetInt(flagMaxAttempts),
	}

	switch {
	case v.GetString(flagChars) != "":
		spec.Chars = v.GetString(flagChars)
	case v.GetString(flagRange) != "":
		spec.Chars = preset.ParseBounds(v.GetString(flagRange))
	}

	if name := v.GetString(flagProfile); name != "" {
		base, err := st.cfg.Spec(name)
		if err != nil {
			return preset.Spec{}, err //nolint:wrapcheck
		}

		spec = base.Merge(spec)
	}

	if spec.MaxAttempts == 0 {
		spec.MaxAttempts = st.cfg.Generator.MaxAttempts
	}

	return spec, nil
}

// random returns the source selected by flags or config.
func (st *state) random(v *viper.Viper) (randstr.RandomFunc, error) {
	kind := v.GetString(flagSource)
	if kind == "" {
		kind = st.cfg.Generator.Source
	}

	seed := st.cfg.Generator.Seed
	if v.IsSet(flagSeed) {
		seed = v.GetUint64(flagSeed)
	}

	return source.New(source.Kind(kind), seed) //nolint:wrapcheck
}

func (st *state) generate(out io.Writer, v *viper.Viper) error {
	count := v.GetInt(flagCount)
	if count < 0 {
		return errors.Errorf("--%s must be greater than or equal to zero, got %d", flagCount, count)
	}

	spec, err := st.spec(v)
	if err != nil {
		return err
	}

	random, err := st.random(v)
	if err != nil {
		return err
	}

	raw, err := spec.Raw(random)
	if err != nil {
		return err //nolint:wrapcheck
	}

	collector := metrics.New(daemon.MetricsNamespace)

	defer func() {
		if path := v.GetString(flagMetricsFile); path != "" {
			if werr := collector.WriteTextfile(path); werr != nil {
				log.Error().Err(werr).Str("path", path).Msg("can't write metrics textfile")
			}
		}
	}()

	gen, err := randstr.NormalizeRaw(raw)
	if err != nil {
		collector.Fail(err, randstr.Stats{})
		return err //nolint:wrapcheck
	}

	enc := json.NewEncoder(out)

	for range count {
		value, stats, err := gen.GenerateStats()
		if err != nil {
			collector.Fail(err, stats)
			return errors.Wrapf(err, "after %d rejected candidates", stats.Rejected.Total())
		}

		collector.Observe(stats)

		log.Debug().
			Int("target", stats.Target).
			Int("length", stats.Length).
			Int("rejected", stats.Rejected.Total()).
			Msg("generated")

		if v.GetBool(flagJSON) {
			err = enc.Encode(generated{
				Value:    value,
				Target:   stats.Target,
				Attempts: stats.Attempts,
				Rejected: stats.Rejected,
			})
		} else {
			_, err = fmt.Fprintln(out, value)
		}

		if err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}

	return nil
}
