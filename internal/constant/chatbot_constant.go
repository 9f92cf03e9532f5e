package constant

// Conversation control tokens. These are part of the chat protocol and must stay stable.
const (
	// ResetToken restarts the conversation at the welcome screen. The language is kept.
	ResetToken = "#"
	// ChangeLanguageToken alone returns to language selection.
	// Followed by text in INTERACTION ("*mata phone ekak oni") it re-detects the language from that text.
	ChangeLanguageToken = "*"
)

// Language selection tokens (welcome stage)
const (
	LanguageTokenEnglish  = "1"
	LanguageTokenSinhala  = "2"
	LanguageTokenSinglish = "3"
)

// Menu tokens (menu stage)
const (
	MenuTokenPhones      = "1"
	MenuTokenAccessories = "2"
	MenuTokenRepairs     = "3"
	MenuTokenContact     = "4"
	MenuTokenExchange    = "5"
)

// Number of previous turns rendered into a generation prompt.
const PromptHistoryTurns = 3

const (
	ChatRoleCustomer  = "Customer"
	ChatRoleAssistant = "Assistant"
)

const (
	ShopPromptRoleFraming = "As an AI assistant for %s, help the customer with their query."

	ShopPromptDirectives = `Respond in a helpful and natural way in %s, keeping in mind:
1. Be specific about products and services we offer
2. For exact pricing, suggest calling the shop
3. For technical issues, provide general information and encourage visiting the store
4. Keep responses friendly, concise and professional
5. Always mention repair services come with warranties
6. If you're suggesting products, mention 1-2 popular models`
)

// Transport and messaging
const (
	// BroadcastConversationID is the WhatsApp status pseudo-chat; messages from it are ignored.
	BroadcastConversationID = "status@broadcast"

	// TurnRecordedTopic carries recorded turns on the in-process bus.
	TurnRecordedTopic = "conversation.turn_recorded"

	// InboundConsumerName is the durable JetStream consumer for gateway messages.
	InboundConsumerName = "shop-assistant-inbound"
)
