package randstr

const (
	// DefaultMaxLength is the upper length bound used when no length is given and
	// the implicit maximum of AtLeast.
	DefaultMaxLength = 100
)

// RandomFunc returns a pseudo-random number in [0,1).
type RandomFunc func() float64

// AcceptFunc reports whether a candidate character may be used.
type AcceptFunc func(r rune) bool

// ReplaceFunc maps a candidate character to the text appended in its place.
// The result may be empty or longer than one character.
type ReplaceFunc func(r rune) string

// Length is either Fixed or Range.
type Length interface {
	isLength()
}

// Fixed is an exact length.
type Fixed int

// Range is a closed length interval.
type Range struct {
	Min int
	Max int
}

func (Fixed) isLength() {}
func (Range) isLength() {}

// AtLeast returns the range [min, DefaultMaxLength].
func AtLeast(min int) Range {
	return Range{Min: min, Max: DefaultMaxLength}
}

// CharSource is either a Sequence or an Interval.
type CharSource interface {
	isCharSource()
}

// Sequence is an explicit list of characters. Candidates are picked by index.
type Sequence []rune

// Interval is a closed code point interval.
type Interval struct {
	Lo int
	Hi int
}

func (Sequence) isCharSource() {}
func (Interval) isCharSource() {}

// Chars returns the characters of s as a Sequence.
func Chars(s string) Sequence {
	return Sequence(s)
}

// DefaultChars is the printable ASCII and ISO-8859-1 interval used when no
// characters are given. Control code points inside it are filtered by default.
var DefaultChars = Interval{Lo: FirstPrintable, Hi: LastISO}

// Options is the typed input of Normalize. The zero value and a nil pointer both
// select every default.
type Options struct {
	// Random drives every draw. Default: source.Default().
	Random RandomFunc

	// Length is the exact length or the length range. Default: a length drawn
	// from [0, DefaultMaxLength] once per call.
	Length Length

	// Chars is the candidate source. Default: DefaultChars.
	Chars CharSource

	Acceptable AcceptFunc
	Replacer   ReplaceFunc

	// IncludeControlChars allows code points in [0,31] and [127,159].
	IncludeControlChars bool

	// MaxAttempts caps the number of rejected candidates in a call. Zero means
	// no cap.
	MaxAttempts int
}

// Config is a validated generation configuration.
type Config struct {
	Random RandomFunc

	// From and To bound the target length, From <= To.
	From int
	To   int

	Chars               CharSource
	Acceptable          AcceptFunc
	Replacer            ReplaceFunc
	IncludeControlChars bool
	MaxAttempts         int
}
