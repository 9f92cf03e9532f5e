package language

import (
	"strings"
	"unicode"

	"shop-assistant-be/pkg/store"
)

// Sinhala Unicode block
const (
	sinhalaBlockStart = 0x0D80
	sinhalaBlockEnd   = 0x0DFF
)

// Romanized-Sinhala function words that rarely occur in English text.
var singlishMarkers = map[string]struct{}{
	"mata": {}, "mage": {}, "oyage": {}, "oyata": {}, "oya": {},
	"thiyenawada": {}, "tiyenawada": {}, "thiyanawada": {}, "thiyenawa": {}, "thiyenne": {},
	"kiyada": {}, "keeyada": {}, "kiyatada": {}, "kohomada": {}, "mokakda": {}, "monawada": {},
	"karanna": {}, "karanawada": {}, "puluwanda": {}, "puluwan": {}, "hadanna": {},
	"ekak": {}, "eka": {}, "ekata": {}, "oni": {}, "onna": {}, "ganna": {}, "denna": {},
	"kohida": {}, "koheda": {}, "gana": {}, "mila": {}, "nathnam": {}, "machan": {}, "ayubowan": {},
}

// Detector classifies text into one of the supported languages.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect is total and deterministic: Sinhala script wins, then Singlish markers, else English.
func (d *Detector) Detect(text string) store.Language {
	for _, r := range text {
		if r >= sinhalaBlockStart && r <= sinhalaBlockEnd {
			return store.LanguageSinhala
		}
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if _, ok := singlishMarkers[w]; ok {
			return store.LanguageSinglish
		}
	}

	return store.LanguageEnglish
}
