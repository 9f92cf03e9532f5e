package language

import (
	"testing"

	"shop-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want store.Language
	}{
		{"plain english", "do you have samsung phones", store.LanguageEnglish},
		{"empty", "", store.LanguageEnglish},
		{"sinhala script", "සැම්සං දුරකථන තියෙනවද", store.LanguageSinhala},
		{"sinhala wins over singlish markers", "mata චාජර් ekak oni", store.LanguageSinhala},
		{"singlish markers", "samsung phone thiyenawada", store.LanguageSinglish},
		{"singlish with punctuation", "Mata iPhone ekak oni!", store.LanguageSinglish},
		{"marker inside an english word does not count", "I want a metal case", store.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	d := NewDetector()
	text := "mila kiyada galaxy s24"

	first := d.Detect(text)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, d.Detect(text))
	}
}
