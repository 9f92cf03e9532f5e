package catalog

import (
	"errors"
	"fmt"
	"strings"

	"shop-assistant-be/pkg/store"
)

var ErrCatalogNotFound = errors.New("catalog not found for language")

// Category selects a branch of the product image table.
type Category string

const (
	CategoryPhones      Category = "phones"
	CategoryAccessories Category = "accessories"
)

// OthersBucket is the repair cost entry used when a brand has no explicit price.
const OthersBucket = "Others"

// Repair cost table keys
const (
	ServiceScreenReplacement  = "screen_replacement"
	ServiceBatteryReplacement = "battery_replacement"
)

// Templates are canned replies, one set per language.
type Templates struct {
	Welcome      string
	Menu         string
	Phones       string
	Accessories  string
	Repairs      string
	Contact      string
	Exchange     string
	InvalidInput string
	Error        string
	Fallback     string

	// StockAvailable takes (item, quantity, phone).
	StockAvailable string
	// StockOut takes (item, phone).
	StockOut string
	// StockUnknown takes (phone).
	StockUnknown string
}

type FAQ struct {
	Warranty      string
	Delivery      string
	Payment       string
	BusinessHours string
}

type PriceItem struct {
	Name  string
	Price string
}

type StockItem struct {
	Name     string
	Quantity int
}

// ImageTable maps category -> group -> item name -> catalog-relative path.
type ImageTable map[Category]map[string]map[string]string

// Catalog is the immutable, per-language set of shop facts.
type Catalog struct {
	Language     store.Language
	LanguageName string

	Name           string
	Address        string
	Landmark       string
	Phone          string
	PrimaryPhone   string
	Hours          string
	Intro          string
	Delivery       string
	PaymentMethods []string

	Brands        []string
	PopularModels map[string][]string
	PriceRanges   map[string]string

	Accessories      []string
	AccessoryDetails map[string][]string

	Services         []string
	RepairCosts      map[string]map[string]string
	SoftwareServices []PriceItem
	Warranty         []string

	// Stock is scanned in order, so longer names must precede their prefixes.
	Stock []StockItem

	Templates Templates
	FAQ       FAQ
	Images    ImageTable
}

// ModelsFor returns the popular models for a brand.
func (c *Catalog) ModelsFor(brand string) []string {
	return c.PopularModels[brand]
}

// PriceRange returns the price range for a brand, if catalogued.
func (c *Catalog) PriceRange(brand string) (string, bool) {
	r, ok := c.PriceRanges[brand]
	return r, ok
}

// RepairCost resolves a repair price by exact brand first, then the Others bucket.
func (c *Catalog) RepairCost(service, brand string) (string, bool) {
	costs, ok := c.RepairCosts[service]
	if !ok {
		return "", false
	}
	if brand != "" {
		if cost, ok := costs[brand]; ok {
			return cost, true
		}
	}
	if cost, ok := costs[OthersBucket]; ok {
		return cost, true
	}
	return "", false
}

// AccessoryTypes returns the detail list for an accessory group.
func (c *Catalog) AccessoryTypes(group string) []string {
	return c.AccessoryDetails[group]
}

// FindStock returns the first stock item whose name appears in the message.
func (c *Catalog) FindStock(message string) (StockItem, bool) {
	lower := strings.ToLower(message)
	for _, item := range c.Stock {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			return item, true
		}
	}
	return StockItem{}, false
}

// Image looks up an image path by category, group and item name.
func (c *Catalog) Image(category Category, group, item string) (string, bool) {
	groups, ok := c.Images[category]
	if !ok {
		return "", false
	}
	items, ok := groups[strings.ToLower(group)]
	if !ok {
		return "", false
	}
	path, ok := items[item]
	return path, ok
}

// FindImage searches every group of a category for the item name.
func (c *Catalog) FindImage(category Category, item string) (string, bool) {
	for _, items := range c.Images[category] {
		if path, ok := items[item]; ok {
			return path, true
		}
	}
	return "", false
}

// ImageItemIn returns the first item of a category group whose name appears in the message.
func (c *Catalog) ImageItemIn(category Category, group, message string) (string, bool) {
	items, ok := c.Images[category][group]
	if !ok {
		return "", false
	}
	lower := strings.ToLower(message)
	// map order is random; pick the longest match so the result is stable
	best := ""
	for name := range items {
		if strings.Contains(lower, strings.ToLower(name)) && len(name) > len(best) {
			best = name
		}
	}
	return best, best != ""
}

// FAQFor returns the FAQ text for a topic key. Unknown topics get the fallback template.
func (c *Catalog) FAQFor(topic string) string {
	switch topic {
	case "warranty":
		return c.FAQ.Warranty
	case "delivery":
		return c.FAQ.Delivery
	case "payment":
		return c.FAQ.Payment
	case "business_hours":
		return c.FAQ.BusinessHours
	}
	return c.Templates.Fallback
}

// KnowledgeBase is the read-only, language-keyed catalog set.
type KnowledgeBase struct {
	catalogs map[store.Language]*Catalog
}

func NewKnowledgeBase(catalogs ...*Catalog) *KnowledgeBase {
	kb := &KnowledgeBase{catalogs: make(map[store.Language]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		kb.catalogs[c.Language] = c
	}
	return kb
}

// Default returns the Sun Mobile Horana catalogs for every supported language.
func Default() *KnowledgeBase {
	return NewKnowledgeBase(English(), Sinhala(), Singlish())
}

// Get returns the catalog for a language.
func (kb *KnowledgeBase) Get(language store.Language) (*Catalog, error) {
	c, ok := kb.catalogs[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, language)
	}
	return c, nil
}

// MustGet is Get for callers that ran Validate at startup.
func (kb *KnowledgeBase) MustGet(language store.Language) *Catalog {
	c, err := kb.Get(language)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that every supported language has a usable catalog.
func (kb *KnowledgeBase) Validate() error {
	for _, language := range store.SupportedLanguages {
		c, err := kb.Get(language)
		if err != nil {
			return err
		}
		if c.Templates.Welcome == "" || c.Templates.Menu == "" || c.Templates.Fallback == "" || c.Templates.Error == "" {
			return fmt.Errorf("catalog %s: missing required templates", language)
		}
		if strings.TrimSpace(c.PrimaryPhone) == "" {
			return fmt.Errorf("catalog %s: primary phone is required", language)
		}
		if !strings.Contains(c.Templates.Fallback, c.PrimaryPhone) {
			return fmt.Errorf("catalog %s: fallback must include the shop phone number", language)
		}
	}
	return nil
}
