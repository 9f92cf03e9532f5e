package response

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/assistant/intent"
	"shop-assistant-be/pkg/assistant/slot"
	"shop-assistant-be/pkg/llm"
	"shop-assistant-be/pkg/store"
)

// paymentTopic spots payment questions that have no intent of their own.
var paymentTopic = regexp.MustCompile(`\b(pay|payment|cash|card|bank transfer|installment|gewanna|gewim)\b|ගෙවීම|ගෙවන්න|මුදල්`)

// Composer turns a classified interaction-stage message into a reply.
type Composer struct {
	kb       *catalog.KnowledgeBase
	provider llm.LLMProvider
	timeout  time.Duration
	logger   logger.ILogger
}

// NewComposer creates a composer. A nil provider runs in degraded mode,
// answering from the FAQ table instead of generating.
func NewComposer(kb *catalog.KnowledgeBase, provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *Composer {
	return &Composer{
		kb:       kb,
		provider: provider,
		timeout:  timeout,
		logger:   log,
	}
}

// GenerationEnabled reports whether a generation backend is configured.
func (c *Composer) GenerationEnabled() bool {
	return c.provider != nil
}

// Compose answers one message. Backend failures never surface as errors;
// the only error is a missing catalog for the session language.
func (c *Composer) Compose(ctx context.Context, message string, s *store.Session, in intent.Intent, slots slot.Slots) (Reply, error) {
	cat, err := c.kb.Get(s.Language)
	if err != nil {
		return Reply{}, err
	}

	if in == intent.StockInquiry {
		return Reply{Text: StockReply(cat, message)}, nil
	}

	reply := Reply{Image: c.selectImage(cat, message, in, slots)}

	if c.provider == nil {
		reply.Text = c.degraded(cat, message, in)
		return reply, nil
	}

	specific := SpecificContext(cat, in, slots)
	prompt := NewPromptBuilder(cat, s.LastTurns(constant.PromptHistoryTurns), specific, message).Build()
	reply.Text = c.generate(ctx, cat, s, in, prompt)

	return reply, nil
}

func (c *Composer) generate(ctx context.Context, cat *catalog.Catalog, s *store.Session, in intent.Intent, prompt string) string {
	ctx, span := otel.Tracer("shop-assistant/response").Start(ctx, "Composer.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.language", string(s.Language)),
		attribute.String("chat.intent", string(in)),
	)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := c.provider.Generate(ctx, prompt)
	if err == nil && strings.TrimSpace(out) == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("ResponseComposer", "Generation failed, using fallback", map[string]interface{}{
			"session_id": s.ID,
			"intent":     in,
			"error":      err.Error(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return cat.Templates.Fallback
	}

	c.logger.Debug("ResponseComposer", "Generated answer", map[string]interface{}{
		"session_id": s.ID,
		"intent":     in,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return strings.TrimSpace(out)
}

// degraded answers from canned FAQ text when there is no generation backend.
func (c *Composer) degraded(cat *catalog.Catalog, message string, in intent.Intent) string {
	switch in {
	case intent.WarrantyInquiry:
		return cat.FAQFor("warranty")
	case intent.DeliveryInquiry:
		return cat.FAQFor("delivery")
	case intent.HoursInquiry:
		return cat.FAQFor("business_hours")
	case intent.LocationInquiry, intent.ContactInquiry:
		return cat.Templates.Contact
	case intent.General:
		if paymentTopic.MatchString(strings.ToLower(message)) {
			return cat.FAQFor("payment")
		}
	}
	return cat.Templates.Fallback
}

func (c *Composer) selectImage(cat *catalog.Catalog, message string, in intent.Intent, slots slot.Slots) string {
	switch in {
	case intent.ProductInquiry:
		if slots.Model == "" {
			return ""
		}
		if slots.Brand != "" {
			path, _ := cat.Image(catalog.CategoryPhones, slots.Brand, slots.Model)
			return path
		}
		path, _ := cat.FindImage(catalog.CategoryPhones, slots.Model)
		return path

	case intent.AccessoryInquiry:
		if slots.Accessory == "" {
			return ""
		}
		group, ok := slot.AccessoryImageGroup(slots.Accessory)
		if !ok {
			return ""
		}
		item, ok := cat.ImageItemIn(catalog.CategoryAccessories, group, message)
		if !ok {
			return ""
		}
		path, _ := cat.Image(catalog.CategoryAccessories, group, item)
		return path
	}
	return ""
}
