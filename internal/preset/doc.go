// Package preset maps names to randstr callbacks so that configuration files, flags
// and query strings can select acceptability predicates and replacers.
package preset
