package matching

import (
	"strings"
	"unicode"
)

// soundexLength is the code length; six characters keep long
// transliterated names apart.
const soundexLength = 6

// soundexDigit returns the consonant group of an upper case letter, or '0'
// for vowels and letters outside the groups.
func soundexDigit(r rune) byte {
	switch r {
	case 'B', 'F', 'P', 'V', 'W':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	}
	return '0'
}

// Soundex returns a phonetic code for a player name, so that spellings such
// as Nimzowitsch and Nimsowitsch compare equal. Non-letters are ignored.
func Soundex(name string) string {
	var code strings.Builder
	var last byte
	for _, r := range strings.ToUpper(name) {
		if !unicode.IsLetter(r) {
			continue
		}
		digit := soundexDigit(r)
		if code.Len() == 0 {
			code.WriteRune(r)
		} else if digit != '0' && digit != last && code.Len() < soundexLength {
			code.WriteByte(digit)
		}
		if digit != '0' {
			last = digit
		}
	}
	if code.Len() == 0 {
		return ""
	}
	for code.Len() < soundexLength {
		code.WriteByte('0')
	}
	return code.String()
}
