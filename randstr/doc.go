// Package randstr generates random strings under length, alphabet, control-character,
// acceptability and replacement constraints.
//
// Every call normalizes its options into a strict Config and then runs the generator
// loop on it. Nothing is shared between calls: the random source, the predicate and the
// replacer are all injected through the options.
//
// Lengths are counted in characters (runes), not bytes. A Replacer that returns more than
// one character consumes more of the target length, and a replacement that would overflow
// the target is discarded and the position is drawn again.
//
// Generation retries rejected candidates without limit unless Options.MaxAttempts is set.
// Options whose constraints cannot be satisfied (for example a predicate that never accepts)
// make an unbounded call run forever.
package randstr
