package preset

import (
	"encoding/json"
	"html"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/thiagodp/better-randstr/randstr"
)

var acceptables = map[string]randstr.AcceptFunc{ //nolint:gochecknoglobals
	"digit": randstr.IsNumeric,
	"upper": randstr.IsUpperAlpha,
	"lower": randstr.IsLowerAlpha,
	"alpha": randstr.IsAlpha,
	"alnum": randstr.IsAlphanumeric,
}

var replacers = map[string]randstr.ReplaceFunc{ //nolint:gochecknoglobals
	"double-lower": doubleLower,
	"quotes":       escapeQuotes,
	"html":         func(r rune) string { return html.EscapeString(string(r)) },
	"json":         escapeJSON,
	"url":          func(r rune) string { return url.QueryEscape(string(r)) },
	"drop-space":   dropSpace,
}

// AcceptableNames returns the known predicate names, sorted.
func AcceptableNames() []string {
	return sortedKeys(acceptables)
}

// ReplacerNames returns the known replacer names, sorted.
func ReplacerNames() []string {
	return sortedKeys(replacers)
}

// Acceptable returns a predicate accepting characters matched by any of the named
// predicates and not contained in exclude. It returns nil when both are empty.
func Acceptable(names []string, exclude string) (randstr.AcceptFunc, error) {
	var matchers []randstr.AcceptFunc

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		f, ok := acceptables[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAcceptable, "%q (known: %s)", name, strings.Join(AcceptableNames(), ", "))
		}

		matchers = append(matchers, f)
	}

	if len(matchers) == 0 && exclude == "" {
		return nil, nil
	}

	return func(r rune) bool {
		if strings.ContainsRune(exclude, r) {
			return false
		}

		if len(matchers) == 0 {
			return true
		}

		for _, f := range matchers {
			if f(r) {
				return true
			}
		}

		return false
	}, nil
}

// Replacer returns the named replacer, or nil for an empty name.
func Replacer(name string) (randstr.ReplaceFunc, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	f, ok := replacers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownReplacer, "%q (known: %s)", name, strings.Join(ReplacerNames(), ", "))
	}

	return f, nil
}

func doubleLower(r rune) string {
	if randstr.IsLowerAlpha(r) {
		return string(r) + string(r)
	}

	return string(r)
}

func escapeQuotes(r rune) string {
	switch r {
	case '"':
		return `\"`
	case '\'':
		return `\'`
	}

	return string(r)
}

// escapeJSON returns the character as it appears inside a JSON string literal.
func escapeJSON(r rune) string {
	b, err := json.Marshal(string(r))
	if err != nil {
		return string(r)
	}

	return string(b[1 : len(b)-1])
}

func dropSpace(r rune) string {
	if r == ' ' {
		return ""
	}

	return string(r)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
