package report

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isComment(c byte) bool {
	return c == '#' || c == ';'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	default:
		return uint64(c-'A') + 10
	}
}

// isItemChar reports whether c may appear in an item or argument name:
// a letter or underscore.
func isItemChar(c byte) bool {
	return isAlpha(c) || c == '_'
}

// isArgChar reports whether c may appear after the first character of
// an argument name: a letter, digit, or underscore.
func isArgChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

func isTerminator(c byte, multiArg bool) bool {
	return isWhitespace(c) || c == ')' || (multiArg && c == ',')
}
