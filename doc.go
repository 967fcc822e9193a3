// Package main provides the randstr command. It prints random strings built
// from a configurable length, character set, acceptance predicate and per
// character replacer, or serves the same generator as a JSON api with fiber.
// Named profiles, the random source and the http service are configured in
// etc/main.toml.
package main
