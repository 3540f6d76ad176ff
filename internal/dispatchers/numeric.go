package dispatchers

import (
	"regexp"
	"strings"
)

// Prefix is the character that marks a token as a flag.
const Prefix = "-"

// realNumber accepts a signed decimal with optional fraction and exponent.
// Spellings like NaN, Infinity or hex floats are not numbers here.
var realNumber = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// LooksLikeFlag reports whether tok starts with the flag prefix.
func LooksLikeFlag(tok string) bool {
	return strings.HasPrefix(tok, Prefix)
}

// IsNumber reports whether tok is a real number literal.
func IsNumber(tok string) bool {
	return realNumber.MatchString(tok)
}
