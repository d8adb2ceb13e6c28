// Package translit converts Alberto Elli's Latin transliteration
// scheme to Unicode Coptic text.
//
// Elli published the Life of Hilaria with the Coptic encoded in Latin
// letters and a special font supplying the letter forms; mapping that
// scheme to a standard encoding allows machine-assisted comparison
// with other versions of the text.
package translit

import "strings"

// table maps one transliterated code point to its Coptic form. The
// nomina sacra capitals expand to ligatures carrying conjoining half
// macrons.
var table = map[rune]string{
	'a': "ⲁ",
	'b': "ⲃ",
	'g': "ⲅ",
	'd': "ⲇ",
	'e': "ⲉ",
	'z': "ⲍ",
	'H': "ⲏ",
	'q': "ⲑ",
	'i': "ⲓ",
	'k': "ⲕ",
	'l': "ⲗ",
	'm': "ⲙ",
	'n': "ⲛ",
	'x': "ⲝ",
	'o': "ⲟ",
	'p': "ⲡ",
	'r': "ⲣ",
	's': "ⲥ",
	't': "ⲧ",
	'u': "ⲩ",
	'P': "ⲫ",
	'C': "ⲭ",
	'T': "ⲯ",
	'w': "ⲱ",
	'y': "ϣ",
	'f': "ϥ",
	'h': "ϩ",
	'j': "ϫ",
	'c': "ϭ",
	'Y': "ϯ",

	// punctuation
	'+': "̄", // combining macron
	'.': "·", // middle dot

	// ligatures, nomina sacra
	'E': "ⲓ︤ⲥ︥",
	'F': "ⲭ︤ⲥ︥",
	'D': "ⲡ︤ⲛ︦ⲁ︥",
}

// Convert maps one transliterated code point to its Coptic form.
// Unmapped code points pass through unchanged.
func Convert(r rune) string {
	if s, ok := table[r]; ok {
		return s
	}
	return string(r)
}

// ConvertText converts a whole text line by line. Header lines
// starting with '#' pass through untouched, as do parenthetical
// annotation spans, which may extend across line breaks.
func ConvertText(text string) string {
	var b strings.Builder
	parenthetical := false
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if strings.HasPrefix(line, "#") {
			b.WriteString(line)
			continue
		}
		for _, r := range line {
			switch {
			case r == '(':
				parenthetical = true
				b.WriteRune(r)
			case r == ')':
				parenthetical = false
				b.WriteRune(r)
			case parenthetical:
				b.WriteRune(r)
			default:
				b.WriteString(Convert(r))
			}
		}
	}
	return b.String()
}
