package slot

import (
	"regexp"
	"strings"

	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/store"
)

// Slots holds the structured fields found in a message. Empty means not mentioned.
type Slots struct {
	Brand     string `json:"brand,omitempty"`
	Model     string `json:"model,omitempty"`
	Service   string `json:"service,omitempty"`
	Accessory string `json:"accessory,omitempty"`
}

func (s Slots) IsEmpty() bool {
	return s.Brand == "" && s.Model == "" && s.Service == "" && s.Accessory == ""
}

type keyword struct {
	word  string
	value string
}

type modelFamily struct {
	name   string
	re     *regexp.Regexp
	format func(match []string) string
}

var modelFamilies = []modelFamily{
	{
		name: "iphone",
		re:   regexp.MustCompile(`iphone\s*(\d+)(?:\s*(pro|plus|max))?`),
		format: func(m []string) string {
			return joinModel("iPhone "+m[1], m[2])
		},
	},
	{
		name: "galaxy",
		re:   regexp.MustCompile(`(galaxy|samsung)\s*([a-z]+)?\s*(\d+)(?:\s*(plus|ultra|fe))?`),
		format: func(m []string) string {
			return joinModel("Galaxy "+strings.ToUpper(m[2])+m[3], m[4])
		},
	},
	{
		name: "redmi",
		re:   regexp.MustCompile(`redmi\s*(note)?\s*(\d+[a-z]?)(?:\s*(pro|plus))?`),
		format: func(m []string) string {
			base := "Redmi "
			if m[1] != "" {
				base += "Note "
			}
			return joinModel(base+strings.ToUpper(m[2]), m[3])
		},
	},
}

func joinModel(base, variant string) string {
	if variant == "" {
		return base
	}
	return base + " " + strings.ToUpper(variant[:1]) + variant[1:]
}

var englishRepairKeywords = []keyword{
	{"screen", "screen replacement"},
	{"battery", "battery replacement"},
	{"software", "software repairs"},
	{"unlock", "unlock service"},
	{"frp", "FRP unlock"},
	{"icloud", "iCloud unlock"},
	{"mi account", "Mi account unlock"},
}

var repairKeywords = map[store.Language][]keyword{
	store.LanguageEnglish: englishRepairKeywords,
	store.LanguageSinhala: {
		{"තිරය", "screen replacement"},
		{"බැටරිය", "battery replacement"},
		{"සොෆ්ට්වෙයාර්", "software repairs"},
		{"අගුළු", "unlock service"},
		{"frp", "FRP unlock"},
		{"icloud", "iCloud unlock"},
		{"mi", "Mi account unlock"},
	},
	store.LanguageSinglish: append([]keyword{
		{"display", "screen replacement"},
		{"batari", "battery replacement"},
	}, englishRepairKeywords...),
}

var englishAccessoryKeywords = []string{"charger", "cable", "cover", "case", "glass", "headphone", "earphone", "earbud", "protector"}

var accessoryKeywords = map[store.Language][]string{
	store.LanguageEnglish:  englishAccessoryKeywords,
	store.LanguageSinhala:  {"චාජර්", "කේබල්", "කවර", "කේස්", "ග්ලාස්", "හෙඩ්ෆෝන්", "ඉයර්ෆෝන්", "ඉයර්බඩ්", "ආරක්ෂක"},
	store.LanguageSinglish: append([]string{"chargar"}, englishAccessoryKeywords...),
}

// Extractor pulls brand, model, service and accessory slots out of free text.
type Extractor struct {
	kb *catalog.KnowledgeBase
}

func NewExtractor(kb *catalog.KnowledgeBase) *Extractor {
	return &Extractor{kb: kb}
}

// Extract is best effort and never fails; an empty Slots is a valid result.
func (e *Extractor) Extract(text string, language store.Language) Slots {
	lower := strings.ToLower(text)
	var s Slots

	if c, err := e.kb.Get(language); err == nil {
		for _, brand := range c.Brands {
			if strings.Contains(lower, strings.ToLower(brand)) {
				s.Brand = brand
				break
			}
		}
	}

	for _, family := range modelFamilies {
		if m := family.re.FindStringSubmatch(lower); m != nil {
			s.Model = family.format(m)
			break
		}
	}

	for _, k := range keywordsFor(repairKeywords, language) {
		if strings.Contains(lower, strings.ToLower(k.word)) {
			s.Service = k.value
			break
		}
	}

	for _, word := range keywordsFor(accessoryKeywords, language) {
		if strings.Contains(lower, strings.ToLower(word)) {
			s.Accessory = word
			break
		}
	}

	return s
}

func keywordsFor[T any](table map[store.Language][]T, language store.Language) []T {
	if words, ok := table[language]; ok {
		return words
	}
	return table[store.LanguageEnglish]
}

// Accessory keyword -> catalog accessory detail group
var accessoryGroups = []keyword{
	{"charg", "chargers"},
	{"චාජර්", "chargers"},
	{"headphone", "headphones"},
	{"earphone", "headphones"},
	{"earbud", "headphones"},
	{"හෙඩ්ෆෝන්", "headphones"},
	{"ඉයර්ෆෝන්", "headphones"},
	{"ඉයර්බඩ්", "headphones"},
	{"cable", "data_cables"},
	{"කේබල්", "data_cables"},
	{"cover", "back_covers"},
	{"case", "back_covers"},
	{"කවර", "back_covers"},
	{"කේස්", "back_covers"},
	{"glass", "tempered_glass"},
	{"protector", "tempered_glass"},
	{"ග්ලාස්", "tempered_glass"},
	{"ආරක්ෂක", "tempered_glass"},
}

// AccessoryGroup maps an accessory keyword to its catalog detail group.
func AccessoryGroup(accessory string) (string, bool) {
	lower := strings.ToLower(accessory)
	if lower == "" {
		return "", false
	}
	for _, g := range accessoryGroups {
		if strings.Contains(lower, g.word) {
			return g.value, true
		}
	}
	return "", false
}

// Accessory detail group -> product image group
var accessoryImageGroups = map[string]string{
	"chargers":    "chargers",
	"back_covers": "cases",
}

// AccessoryImageGroup maps an accessory keyword to its product image group.
func AccessoryImageGroup(accessory string) (string, bool) {
	group, ok := AccessoryGroup(accessory)
	if !ok {
		return "", false
	}
	img, ok := accessoryImageGroups[group]
	return img, ok
}
