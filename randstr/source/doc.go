// Package source provides random number sources for randstr. Every source returns
// a float64 in [0,1) and is safe for concurrent use.
//
// Default is not suitable for secrets. Use Crypto when the generated strings must be
// unpredictable.
package source
