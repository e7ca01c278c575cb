// Package slug строит человекочитаемый URL-идентификатор объявления.
package slug

import (
	"strings"
	"unicode"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/translit"
)

const (
	PrefixSale    = "satilik"
	PrefixRent    = "kiralik"
	PrefixUnknown = "ilan"

	suffixLength = 8
)

// Prefix - префикс пространства выдачи по типу сделки
func Prefix(t domain.ListingType) string {
	switch t {
	case domain.ListingTypeSale:
		return PrefixSale
	case domain.ListingTypeRent:
		return PrefixRent
	}
	return PrefixUnknown
}

// Generate детерминированно строит slug из типа и заголовка.
// Уникальность не гарантируется, ее обеспечивает хранилище.
func Generate(t domain.ListingType, title string) string {
	body := Normalize(title)
	if body == "" {
		return Prefix(t)
	}
	return Prefix(t) + "-" + body
}

// Normalize превращает произвольный текст в сегмент [a-z0-9-] без крайних и двойных дефисов
func Normalize(s string) string {
	s = translit.Fold(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case isSlugRune(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}

// WithSuffix разрешает коллизию: к slug добавляется начало стабильного id
func WithSuffix(slug, id string) string {
	var b strings.Builder
	for _, r := range translit.Fold(id) {
		if isSlugRune(r) {
			b.WriteRune(r)
			if b.Len() == suffixLength {
				break
			}
		}
	}
	if b.Len() == 0 {
		return slug
	}
	return slug + "-" + b.String()
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
