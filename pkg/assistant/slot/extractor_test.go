package slot

import (
	"testing"

	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestExtractEnglish(t *testing.T) {
	e := NewExtractor(catalog.Default())

	tests := []struct {
		name    string
		message string
		want    Slots
	}{
		{"brand only", "do you have samsung phones", Slots{Brand: "Samsung"}},
		{"iphone model with variant", "price of iPhone 15 Pro", Slots{Model: "iPhone 15 Pro"}},
		{"galaxy model", "is the samsung galaxy s24 ultra available", Slots{Brand: "Samsung", Model: "Galaxy S24 Ultra"}},
		{"galaxy without series word", "galaxy a54", Slots{Model: "Galaxy A54"}},
		{"redmi model", "redmi note 13 pro price", Slots{Model: "Redmi Note 13 Pro"}},
		{"repair service", "can you fix my apple screen", Slots{Brand: "Apple", Service: "screen replacement"}},
		{"accessory", "looking for a fast charger", Slots{Accessory: "charger"}},
		{"nothing", "hello", Slots{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.message, store.LanguageEnglish))
		})
	}
}

func TestExtractFirstFamilyWins(t *testing.T) {
	e := NewExtractor(catalog.Default())

	got := e.Extract("compare iphone 14 and galaxy s23", store.LanguageEnglish)
	assert.Equal(t, "iPhone 14", got.Model)
}

func TestExtractSinhala(t *testing.T) {
	e := NewExtractor(catalog.Default())

	got := e.Extract("Samsung තිරය හදන්න පුළුවන්ද", store.LanguageSinhala)
	assert.Equal(t, "Samsung", got.Brand)
	assert.Equal(t, "screen replacement", got.Service)

	got = e.Extract("චාජර් තියෙනවද", store.LanguageSinhala)
	assert.Equal(t, "චාජර්", got.Accessory)
}

func TestExtractUnknownLanguageIsEmptyBrand(t *testing.T) {
	e := NewExtractor(catalog.NewKnowledgeBase(catalog.English()))

	got := e.Extract("samsung battery", store.LanguageSinglish)
	assert.Empty(t, got.Brand)
	assert.Equal(t, "battery replacement", got.Service)
	assert.False(t, got.IsEmpty())
}

func TestAccessoryGroups(t *testing.T) {
	group, ok := AccessoryGroup("earbud")
	assert.True(t, ok)
	assert.Equal(t, "headphones", group)

	group, ok = AccessoryGroup("කවර")
	assert.True(t, ok)
	assert.Equal(t, "back_covers", group)

	img, ok := AccessoryImageGroup("case")
	assert.True(t, ok)
	assert.Equal(t, "cases", img)

	_, ok = AccessoryImageGroup("cable")
	assert.False(t, ok)
}
