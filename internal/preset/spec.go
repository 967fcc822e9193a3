package preset

import (
	"github.com/thiagodp/better-randstr/randstr"
)

// Spec describes generation options with plain values. Length and Chars take any
// value randstr.Raw accepts for "length" and "chars".
type Spec struct {
	Length              any      `toml:"length" json:"length,omitempty"`
	Chars               any      `toml:"chars" json:"chars,omitempty"`
	Accept              []string `toml:"accept" json:"accept,omitempty"`
	Exclude             string   `toml:"exclude" json:"exclude,omitempty"`
	Replacer            string   `toml:"replacer" json:"replacer,omitempty"`
	IncludeControlChars bool     `toml:"includeControlChars" json:"includeControlChars,omitempty"`
	MaxAttempts         int      `toml:"maxAttempts" json:"maxAttempts,omitempty" validate:"gte=0"`
}

// Merge returns s with every non-zero field of o applied on top.
func (s Spec) Merge(o Spec) Spec {
	if o.Length != nil {
		s.Length = o.Length
	}

	if o.Chars != nil {
		s.Chars = o.Chars
	}

	if len(o.Accept) > 0 {
		s.Accept = o.Accept
	}

	if o.Exclude != "" {
		s.Exclude = o.Exclude
	}

	if o.Replacer != "" {
		s.Replacer = o.Replacer
	}

	if o.IncludeControlChars {
		s.IncludeControlChars = true
	}

	if o.MaxAttempts != 0 {
		s.MaxAttempts = o.MaxAttempts
	}

	return s
}

// Raw resolves the named callbacks and returns the options in raw form.
func (s Spec) Raw(random randstr.RandomFunc) (randstr.Raw, error) {
	acceptable, err := Acceptable(s.Accept, s.Exclude)
	if err != nil {
		return nil, err
	}

	replacer, err := Replacer(s.Replacer)
	if err != nil {
		return nil, err
	}

	raw := randstr.Raw{
		"length":              s.Length,
		"chars":               s.Chars,
		"includeControlChars": s.IncludeControlChars,
		"maxAttempts":         s.MaxAttempts,
	}

	if random != nil {
		raw["random"] = random
	}

	if acceptable != nil {
		raw["acceptable"] = acceptable
	}

	if replacer != nil {
		raw["replacer"] = replacer
	}

	return raw, nil
}
