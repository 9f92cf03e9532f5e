package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/assistant/intent"
	"shop-assistant-be/pkg/assistant/language"
	"shop-assistant-be/pkg/assistant/response"
	"shop-assistant-be/pkg/assistant/session"
	"shop-assistant-be/pkg/assistant/slot"
	"shop-assistant-be/pkg/assistant/state"
	"shop-assistant-be/pkg/events"
	"shop-assistant-be/pkg/store"
)

var ErrEmptyConversationID = errors.New("conversation id is required")

// IChatbotService is the dialogue engine entry point shared by every transport.
type IChatbotService interface {
	HandleMessage(ctx context.Context, conversationID, text string) (*response.Reply, error)
	ActiveSessions(ctx context.Context) (int, error)
}

// chatbotService routes each message through the per-conversation state machine.
type chatbotService struct {
	kb         *catalog.KnowledgeBase
	sessions   *session.Manager
	states     *state.Manager
	detector   *language.Detector
	classifier *intent.Classifier
	extractor  *slot.Extractor
	composer   *response.Composer
	turns      IPublisherService
	logger     logger.ILogger
}

// NewChatbotService wires the dialogue components. turns may be nil when
// transcripts are not collected.
func NewChatbotService(
	kb *catalog.KnowledgeBase,
	sessions *session.Manager,
	classifier *intent.Classifier,
	composer *response.Composer,
	turns IPublisherService,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		kb:         kb,
		sessions:   sessions,
		states:     state.NewManager(log),
		detector:   language.NewDetector(),
		classifier: classifier,
		extractor:  slot.NewExtractor(kb),
		composer:   composer,
		turns:      turns,
		logger:     log,
	}
}

func (s *chatbotService) HandleMessage(ctx context.Context, conversationID, text string) (*response.Reply, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrEmptyConversationID
	}

	unlock, err := s.sessions.Lock(ctx, conversationID)
	if err != nil {
		s.logger.Error("ChatbotService", "Failed to lock session", map[string]interface{}{
			"session_id": conversationID,
			"error":      err.Error(),
		})
		return &response.Reply{Text: s.catalogFor(s.sessions.DefaultLanguage()).Templates.Error}, nil
	}
	defer unlock()

	sess, err := s.sessions.LoadOrCreate(ctx, conversationID)
	if err != nil {
		s.logger.Error("ChatbotService", "Failed to load session", map[string]interface{}{
			"session_id": conversationID,
			"error":      err.Error(),
		})
		return &response.Reply{Text: s.catalogFor(s.sessions.DefaultLanguage()).Templates.Error}, nil
	}

	reply := s.route(ctx, sess, strings.TrimSpace(text))

	sess.Touch()
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.Error("ChatbotService", "Failed to save session", map[string]interface{}{
			"session_id": conversationID,
			"error":      err.Error(),
		})
	}

	return &reply, nil
}

func (s *chatbotService) ActiveSessions(ctx context.Context) (int, error) {
	return s.sessions.Active(ctx)
}

// route runs one step of the state machine. Panics are turned into the error template.
func (s *chatbotService) route(ctx context.Context, sess *store.Session, text string) (reply response.Reply) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ChatbotService", "Recovered from panic while routing", map[string]interface{}{
				"session_id": sess.ID,
				"stage":      sess.Stage,
				"panic":      fmt.Sprint(r),
			})
			reply = response.Reply{Text: s.catalogFor(sess.Language).Templates.Error}
		}
	}()

	if text == constant.ResetToken {
		s.states.Reset(sess)
		return response.Reply{Text: s.catalogFor(s.sessions.DefaultLanguage()).Templates.Welcome}
	}

	if sess.IsFirstMessage {
		s.states.GreetFirstContact(sess)
		return response.Reply{Text: s.catalogFor(sess.Language).Templates.Welcome}
	}

	if strings.HasPrefix(text, constant.ChangeLanguageToken) {
		rest := strings.TrimSpace(strings.TrimPrefix(text, constant.ChangeLanguageToken))
		// outside INTERACTION there is no query to answer, so any "*" reopens language selection
		if rest == "" || sess.Stage != store.StageInteraction {
			s.states.ReturnToLanguageSelection(sess)
			return response.Reply{Text: s.catalogFor(sess.Language).Templates.Welcome}
		}
		s.states.PinDetectedLanguage(sess, s.detector.Detect(rest))
		text = rest
	}

	switch sess.Stage {
	case store.StageWelcome:
		lang, ok := state.LanguageForToken(text)
		if !ok {
			return response.Reply{Text: s.catalogFor(sess.Language).Templates.Welcome}
		}
		s.states.SelectLanguage(sess, lang)
		return response.Reply{Text: s.catalogFor(sess.Language).Templates.Menu}

	case store.StageMenu:
		option, ok := state.MenuOptionForToken(text)
		if !ok {
			return response.Reply{Text: s.catalogFor(sess.Language).Templates.Menu}
		}
		s.states.EnterInteraction(sess, option)
		return response.Reply{Text: option.Intro(s.catalogFor(sess.Language).Templates)}

	case store.StageInteraction:
		if text == "" {
			return response.Reply{Text: s.catalogFor(sess.Language).Templates.InvalidInput}
		}
		return s.interact(ctx, sess, text)
	}

	s.logger.Warn("ChatbotService", "Unknown stage, resetting", map[string]interface{}{
		"session_id": sess.ID,
		"stage":      sess.Stage,
	})
	s.states.Reset(sess)
	s.states.GreetFirstContact(sess)
	return response.Reply{Text: s.catalogFor(sess.Language).Templates.Welcome}
}

func (s *chatbotService) interact(ctx context.Context, sess *store.Session, text string) response.Reply {
	in := s.classifier.Classify(text, sess.Language)
	slots := s.extractor.Extract(text, sess.Language)

	s.logger.Debug("ChatbotService", "Message classified", map[string]interface{}{
		"session_id": sess.ID,
		"language":   sess.Language,
		"intent":     in,
		"brand":      slots.Brand,
		"model":      slots.Model,
		"service":    slots.Service,
		"accessory":  slots.Accessory,
	})

	reply, err := s.composer.Compose(ctx, text, sess, in, slots)
	if err != nil {
		s.logger.Error("ChatbotService", "Failed to compose reply", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return response.Reply{Text: s.catalogFor(sess.Language).Templates.Error}
	}

	sess.RecordTurn(text, reply.Text)
	if sess.TrackProduct(slots.Brand) {
		s.logger.Debug("ChatbotService", "Product interest tracked", map[string]interface{}{
			"session_id": sess.ID,
			"brand":      slots.Brand,
		})
	}

	s.publishTurn(ctx, sess, in, slots, text, reply)
	return reply
}

func (s *chatbotService) publishTurn(ctx context.Context, sess *store.Session, in intent.Intent, slots slot.Slots, text string, reply response.Reply) {
	if s.turns == nil {
		return
	}

	payload, err := json.Marshal(events.TurnRecorded{
		ConversationId: sess.ID,
		Stage:          string(sess.Stage),
		Language:       string(sess.Language),
		Intent:         string(in),
		Message:        text,
		Response:       reply.Text,
		Image:          reply.Image,
		Slots:          slotMap(slots),
		RecordedAt:     time.Now(),
	})
	if err != nil {
		return
	}

	if err := s.turns.Publish(ctx, payload); err != nil {
		s.logger.Warn("ChatbotService", "Failed to publish turn", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}
}

// catalogFor falls back to the default language; Validate at startup guarantees it exists.
func (s *chatbotService) catalogFor(lang store.Language) *catalog.Catalog {
	if c, err := s.kb.Get(lang); err == nil {
		return c
	}
	return s.kb.MustGet(s.sessions.DefaultLanguage())
}

func slotMap(slots slot.Slots) map[string]string {
	if slots.IsEmpty() {
		return nil
	}
	m := make(map[string]string, 4)
	for k, v := range map[string]string{
		"brand":     slots.Brand,
		"model":     slots.Model,
		"service":   slots.Service,
		"accessory": slots.Accessory,
	} {
		if v != "" {
			m[k] = v
		}
	}
	return m
}
