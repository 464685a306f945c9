package domain

import (
	"strings"
	"unicode/utf8"
)

const esc = 0x1b

// StripANSI removes terminal escape sequences from s.
//
// A CSI sequence (ESC '[') is dropped up to and including its terminating
// ASCII letter; an unterminated sequence drops the rest of the input. An ESC
// followed by any other character drops the ESC and that whole character,
// so valid UTF-8 input stays valid. The result never contains ESC, so
// StripANSI(StripANSI(s)) == StripANSI(s).
func StripANSI(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != esc {
			b.WriteByte(c)
			continue
		}

		if i+1 >= len(s) {
			break
		}

		if s[i+1] != '[' {
			_, size := utf8.DecodeRuneInString(s[i+1:])
			i += size
			continue
		}

		i += 2
		for i < len(s) && !isASCIILetter(s[i]) {
			i++
		}
	}

	return b.String()
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
