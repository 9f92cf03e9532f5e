package intent

import (
	"fmt"
	"regexp"
	"strings"

	"shop-assistant-be/pkg/store"
)

// Intent is the classified purpose of a customer message.
type Intent string

const (
	ProductInquiry   Intent = "PRODUCT_INQUIRY"
	AccessoryInquiry Intent = "ACCESSORY_INQUIRY"
	RepairInquiry    Intent = "REPAIR_INQUIRY"
	LocationInquiry  Intent = "LOCATION_INQUIRY"
	ContactInquiry   Intent = "CONTACT_INQUIRY"
	HoursInquiry     Intent = "HOURS_INQUIRY"
	DeliveryInquiry  Intent = "DELIVERY_INQUIRY"
	WarrantyInquiry  Intent = "WARRANTY_INQUIRY"
	StockInquiry     Intent = "STOCK_INQUIRY"
	General          Intent = "GENERAL"
)

// Rule maps one intent to its ordered patterns.
type Rule struct {
	Intent   Intent
	Patterns []string
}

type compiledRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// Classifier matches messages against per-language ordered rule tables.
type Classifier struct {
	tables map[store.Language][]compiledRule
}

// NewClassifier compiles the built-in rule tables.
func NewClassifier() (*Classifier, error) {
	return NewClassifierWithRules(DefaultRules())
}

// NewClassifierWithRules compiles the given tables, keeping declaration order.
func NewClassifierWithRules(rules map[store.Language][]Rule) (*Classifier, error) {
	c := &Classifier{tables: make(map[store.Language][]compiledRule, len(rules))}
	for language, table := range rules {
		compiled := make([]compiledRule, 0, len(table))
		for _, rule := range table {
			cr := compiledRule{intent: rule.Intent}
			for _, p := range rule.Patterns {
				re, err := regexp.Compile(p)
				if err != nil {
					return nil, fmt.Errorf("compile %s pattern for %s %q: %w", language, rule.Intent, p, err)
				}
				cr.patterns = append(cr.patterns, re)
			}
			compiled = append(compiled, cr)
		}
		c.tables[language] = compiled
	}
	return c, nil
}

// Classify returns the first intent whose pattern matches, in table order, or General.
// A language without its own table is classified with the English table.
func (c *Classifier) Classify(text string, language store.Language) Intent {
	table, ok := c.tables[language]
	if !ok {
		table = c.tables[store.LanguageEnglish]
	}

	lower := strings.ToLower(text)
	for _, rule := range table {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.intent
			}
		}
	}
	return General
}
