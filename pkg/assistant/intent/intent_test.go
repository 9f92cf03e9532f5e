package intent

import (
	"testing"

	"shop-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEnglish(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"product", "Do you have Samsung phones?", ProductInquiry},
		{"product price", "price of the iphone 15", ProductInquiry},
		{"accessory", "I'm looking for a fast charger", AccessoryInquiry},
		{"repair", "can you fix my cracked screen", RepairInquiry},
		{"repair cost", "how much will it cost to replace an apple battery", RepairInquiry},
		{"location", "where is your shop", LocationInquiry},
		{"contact", "what's your number", ContactInquiry},
		{"hours", "what are your opening hours", HoursInquiry},
		{"delivery", "can you deliver to galle", DeliveryInquiry},
		{"warranty", "how long is the warranty period", WarrantyInquiry},
		{"stock", "is the iphone 15 in stock", StockInquiry},
		{"general", "hello there", General},
		{"empty", "", General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.message, store.LanguageEnglish))
		})
	}
}

func TestClassifyTieBreakPrefersEarlierIntent(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	// matches both the product and the accessory tables
	assert.Equal(t, ProductInquiry, c.Classify("do you have samsung chargers", store.LanguageEnglish))

	swapped := map[store.Language][]Rule{
		store.LanguageEnglish: {
			{AccessoryInquiry, []string{`charger`}},
			{ProductInquiry, []string{`samsung`}},
		},
	}
	c, err = NewClassifierWithRules(swapped)
	require.NoError(t, err)
	assert.Equal(t, AccessoryInquiry, c.Classify("do you have samsung chargers", store.LanguageEnglish))
}

func TestClassifyLanguagesAreIsolated(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	sinhala := "සැම්සං දුරකථන තියෙනවද"
	assert.Equal(t, ProductInquiry, c.Classify(sinhala, store.LanguageSinhala))
	assert.Equal(t, General, c.Classify(sinhala, store.LanguageEnglish))

	assert.Equal(t, General, c.Classify("where is your shop", store.LanguageSinhala))
}

func TestClassifySinhala(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	assert.Equal(t, AccessoryInquiry, c.Classify("චාජර් තියෙනවද", store.LanguageSinhala))
	assert.Equal(t, RepairInquiry, c.Classify("මගේ තිරය හදන්න පුළුවන්ද", store.LanguageSinhala))
	assert.Equal(t, WarrantyInquiry, c.Classify("වගකීම කොච්චරද", store.LanguageSinhala))
}

func TestClassifySinglish(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	assert.Equal(t, ProductInquiry, c.Classify("samsung phone thiyenawada", store.LanguageSinglish))
	assert.Equal(t, AccessoryInquiry, c.Classify("charger ekak oni", store.LanguageSinglish))
	assert.Equal(t, LocationInquiry, c.Classify("shop eka koheda", store.LanguageSinglish))
	assert.Equal(t, General, c.Classify("ayubowan", store.LanguageSinglish))
}

func TestClassifyUnknownLanguageUsesEnglishTable(t *testing.T) {
	c, err := NewClassifierWithRules(map[store.Language][]Rule{
		store.LanguageEnglish: englishRules(),
	})
	require.NoError(t, err)

	assert.Equal(t, LocationInquiry, c.Classify("where is your shop", store.LanguageSinglish))
}

func TestNewClassifierRejectsBadPattern(t *testing.T) {
	_, err := NewClassifierWithRules(map[store.Language][]Rule{
		store.LanguageEnglish: {{ProductInquiry, []string{`(unclosed`}}},
	})
	assert.Error(t, err)
}
