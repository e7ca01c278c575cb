package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLower(t *testing.T) {
	assert.Equal(t, "ıspanakçı", Lower("ISPANAKÇI"))
	assert.Equal(t, "istanbul", Lower("İstanbul"))
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"çğıöşü", "cgiosu"},
		{"ÇĞİÖŞÜ", "CGIOSU"},
		{"âîû", "aiu"},
		{"Manzaralı", "Manzarali"},
		{"ñ é", "ñ é"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliterate(tt.in))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("KADIKÖY"), Fold("kadıköy"))
	assert.Equal(t, "kadikoy", Fold("Kadıköy"))
	assert.Equal(t, "istanbul", Fold("İSTANBUL"))
}
