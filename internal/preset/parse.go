package preset

import (
	"strings"
)

// ParseBounds reads a number or a comma separated pair from a flag or query
// value. "8" yields "8", "8,16" yields ["8" "16"] and "8," yields ["8"], which
// randstr reads as a lower bound. A blank value yields nil.
func ParseBounds(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if !strings.Contains(s, ",") {
		return s
	}

	parts := strings.Split(s, ",")
	if strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// ParseList splits a comma separated list, dropping blank entries.
func ParseList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
