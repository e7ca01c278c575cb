// Package translit - регистр и транслитерация для турецкого рынка.
package translit

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// diacritics - полное отображение диакритики рынка в латиницу без акцентов.
// Каждому символу соответствует ровно одна цель, прочие символы не трогаются.
var diacritics = map[rune]string{
	'ç': "c", 'Ç': "C",
	'ğ': "g", 'Ğ': "G",
	'ı': "i", 'İ': "I",
	'ö': "o", 'Ö': "O",
	'ş': "s", 'Ş': "S",
	'ü': "u", 'Ü': "U",
	'â': "a", 'Â': "A",
	'î': "i", 'Î': "I",
	'û': "u", 'Û': "U",
}

// Lower - нижний регистр по правилам турецкого языка (I -> ı, İ -> i).
// Caser не потокобезопасен, поэтому создается на каждый вызов.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// Transliterate заменяет диакритику по таблице
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := diacritics[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fold - ключ для регистронезависимого сравнения
func Fold(s string) string {
	return Transliterate(Lower(s))
}
