package response

import (
	"fmt"
	"strings"

	"shop-assistant-be/internal/constant"
	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/store"
)

// PromptBuilder assembles the generation prompt for a free-form question.
type PromptBuilder struct {
	catalog  *catalog.Catalog
	history  []store.Turn
	specific string
	message  string
}

func NewPromptBuilder(c *catalog.Catalog, history []store.Turn, specific, message string) *PromptBuilder {
	return &PromptBuilder{
		catalog:  c,
		history:  history,
		specific: specific,
		message:  message,
	}
}

func (b *PromptBuilder) Build() string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, constant.ShopPromptRoleFraming, b.catalog.Name)
	prompt.WriteString("\n\n")

	b.writeHistory(&prompt)
	b.writeShopFacts(&prompt)

	if b.specific != "" {
		prompt.WriteString(b.specific)
		prompt.WriteString("\n")
	}

	fmt.Fprintf(&prompt, "Customer query: %s\n\n", b.message)

	fmt.Fprintf(&prompt, constant.ShopPromptDirectives, b.catalog.LanguageName)
	prompt.WriteString("\n\nResponse:")

	return prompt.String()
}

func (b *PromptBuilder) writeHistory(prompt *strings.Builder) {
	prompt.WriteString("Previous conversation:\n")
	prompt.WriteString(RenderHistory(b.history))
	prompt.WriteString("\n")
}

func (b *PromptBuilder) writeShopFacts(prompt *strings.Builder) {
	prompt.WriteString("Current shop context:\n")
	fmt.Fprintf(prompt, "- Available brands: %s\n", strings.Join(b.catalog.Brands, ", "))
	fmt.Fprintf(prompt, "- Services: %s\n", strings.Join(b.catalog.Services, ", "))
	fmt.Fprintf(prompt, "- Location: %s\n", b.catalog.Address)
	fmt.Fprintf(prompt, "- Contact: %s\n\n", b.catalog.Phone)
}

// RenderHistory renders turns as alternating customer and assistant lines.
func RenderHistory(turns []store.Turn) string {
	var b strings.Builder
	for _, t := range turns {
		fmt.Fprintf(&b, "%s: %s\n%s: %s\n", constant.ChatRoleCustomer, t.Message, constant.ChatRoleAssistant, t.Response)
	}
	return b.String()
}
