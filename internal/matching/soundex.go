package matching

import (
	"strings"
	"unicode"
)

// soundexCodes groups consonants that sound alike; vowels and the rest map
// to '0'. J shares a code with K and W with V, so transliterated player
// names such as Alekhine and Aljechin agree.
var soundexCodes = [26]byte{
	'0', '1', '2', '3', '0', '1', '2', '0', '0', '2', '2', '4', '5', // A-M
	'5', '0', '1', '2', '6', '2', '3', '0', '1', '1', '2', '0', '2', // N-Z
}

// Soundex returns a six character phonetic code for name.
func Soundex(name string) string {
	var letters []byte
	for _, r := range strings.ToUpper(name) {
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			letters = append(letters, byte(r))
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := []byte{letters[0]}
	last := soundexCodes[letters[0]-'A']
	for _, c := range letters[1:] {
		if len(code) == 6 {
			break
		}
		d := soundexCodes[c-'A']
		if d == '0' {
			continue
		}
		if d != last {
			code = append(code, d)
		}
		last = d
	}
	for len(code) < 6 {
		code = append(code, '0')
	}
	return string(code)
}

// SoundexMatch reports whether two names sound alike.
func SoundexMatch(name1, name2 string) bool {
	return Soundex(name1) == Soundex(name2)
}
