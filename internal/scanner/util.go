package scanner

import (
	"unicode"

	"logsim/internal/token"
)

// isDigit accepts any Unicode decimal digit, so '２' starts a Number too.
func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

func isNewline(r rune) bool {
	return r == '\n'
}

func anyChar(rune) bool {
	return true
}

// isResumeChar reports whether scanning may resume at r after an invalid
// character: letters, digits, operators and '_'. '/' is excluded.
func isResumeChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r) || token.IsOperatorChar(r)
}
