package randstr

const (
	// Numbers holds the decimal digits.
	Numbers = "0123456789"
	// UpperAlphabet holds the upper-case ASCII letters.
	UpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// LowerAlphabet holds the lower-case ASCII letters.
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	// Alphabet holds the upper-case letters followed by the lower-case letters.
	Alphabet = UpperAlphabet + LowerAlphabet
	// AlphaNumeric holds the digits followed by Alphabet.
	AlphaNumeric = Numbers + Alphabet
)

const (
	// LastASCII is the last code point of the ASCII table.
	LastASCII = 127
	// LastISO is the last code point of the ISO-8859-1 table.
	LastISO = 255

	// FirstPrintable is the first printable code point of both tables.
	FirstPrintable = 32

	asciiControlStart = 0
	asciiControlEnd   = 31
	isoControlStart   = 127
	isoControlEnd     = 159
)

// IsControl reports whether the code point is negative or falls in one of the
// non-printable ranges [0,31] and [127,159].
func IsControl(code int) bool {
	return code < 0 ||
		(code >= asciiControlStart && code <= asciiControlEnd) ||
		(code >= isoControlStart && code <= isoControlEnd)
}

// IsNumeric reports whether r is an ASCII digit.
func IsNumeric(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsUpperAlpha reports whether r is an ASCII upper-case letter.
func IsUpperAlpha(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsLowerAlpha reports whether r is an ASCII lower-case letter.
func IsLowerAlpha(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool {
	return IsUpperAlpha(r) || IsLowerAlpha(r)
}

// IsAlphanumeric reports whether r is an ASCII letter or digit.
func IsAlphanumeric(r rune) bool {
	return IsAlpha(r) || IsNumeric(r)
}
