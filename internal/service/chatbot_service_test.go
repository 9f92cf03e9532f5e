package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/repository/memory"
	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/assistant/intent"
	"shop-assistant-be/pkg/assistant/response"
	"shop-assistant-be/pkg/assistant/session"
	"shop-assistant-be/pkg/events"
	"shop-assistant-be/pkg/llm"
	"shop-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishFallback = "I apologize, I couldn't process your request. Please try again or call us at 0767410963 for immediate assistance."

type scriptedProvider struct {
	mu      sync.Mutex
	answer  string
	err     error
	panics  bool
	prompts []string
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.Generate(ctx, history[len(history)-1].Content, options...)
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.panics {
		panic("backend exploded")
	}
	p.prompts = append(p.prompts, prompt)
	return p.answer, p.err
}

func (p *scriptedProvider) Prompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (c *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payloads = append(c.payloads, payload)
	return nil
}

func (c *capturingPublisher) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads)
}

type harness struct {
	svc      IChatbotService
	sessions *session.Manager
	provider *scriptedProvider
	turns    *capturingPublisher
}

func newHarness(t *testing.T, provider *scriptedProvider) *harness {
	t.Helper()
	log := logger.NewNopLogger()
	kb := catalog.Default()
	require.NoError(t, kb.Validate())

	sessions := session.NewManager(memory.NewSessionRepository(time.Hour, time.Minute), store.LanguageEnglish, log)

	var backend llm.LLMProvider
	if provider != nil {
		backend = provider
	}
	composer := response.NewComposer(kb, backend, time.Second, log)
	turns := &capturingPublisher{}
	classifier, err := intent.NewClassifier()
	require.NoError(t, err)

	return &harness{
		svc:      NewChatbotService(kb, sessions, classifier, composer, turns, log),
		sessions: sessions,
		provider: provider,
		turns:    turns,
	}
}

func (h *harness) send(t *testing.T, id, text string) *response.Reply {
	t.Helper()
	reply, err := h.svc.HandleMessage(context.Background(), id, text)
	require.NoError(t, err)
	require.NotNil(t, reply)
	return reply
}

func (h *harness) session(t *testing.T, id string) *store.Session {
	t.Helper()
	s, found, err := h.sessions.Snapshot(context.Background(), id)
	require.NoError(t, err)
	require.True(t, found)
	return s
}

// toInteraction walks a fresh conversation to the interaction stage in English.
func (h *harness) toInteraction(t *testing.T, id string) {
	h.send(t, id, "hello")
	h.send(t, id, "1")
	h.send(t, id, "1")
	require.Equal(t, store.StageInteraction, h.session(t, id).Stage)
}

func TestFirstMessageGetsWelcome(t *testing.T) {
	h := newHarness(t, &scriptedProvider{answer: "unused"})

	reply := h.send(t, "94770000001", "hello")

	assert.Equal(t, catalog.English().Templates.Welcome, reply.Text)
	s := h.session(t, "94770000001")
	assert.Equal(t, store.StageWelcome, s.Stage)
	assert.False(t, s.IsFirstMessage)
	assert.Empty(t, s.History)
	assert.Empty(t, h.provider.Prompts())
}

func TestLanguageSelectionShowsMenu(t *testing.T) {
	h := newHarness(t, nil)
	h.send(t, "a", "hello")

	reply := h.send(t, "a", "2")

	assert.Equal(t, catalog.Sinhala().Templates.Menu, reply.Text)
	s := h.session(t, "a")
	assert.Equal(t, store.StageMenu, s.Stage)
	assert.Equal(t, store.LanguageSinhala, s.Language)
}

func TestStagesRepromptOnUnknownInput(t *testing.T) {
	h := newHarness(t, nil)
	h.send(t, "a", "hello")

	assert.Equal(t, catalog.English().Templates.Welcome, h.send(t, "a", "what?").Text)
	assert.Equal(t, store.StageWelcome, h.session(t, "a").Stage)

	h.send(t, "a", "3")
	assert.Equal(t, catalog.Singlish().Templates.Menu, h.send(t, "a", "9").Text)
	assert.Equal(t, store.StageMenu, h.session(t, "a").Stage)
}

func TestMenuOptionIntroduction(t *testing.T) {
	cases := []struct {
		token string
		want  func(catalog.Templates) string
	}{
		{"1", func(t catalog.Templates) string { return t.Phones }},
		{"2", func(t catalog.Templates) string { return t.Accessories }},
		{"3", func(t catalog.Templates) string { return t.Repairs }},
		{"4", func(t catalog.Templates) string { return t.Contact }},
		{"5", func(t catalog.Templates) string { return t.Exchange }},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			h := newHarness(t, nil)
			h.send(t, "a", "hi")
			h.send(t, "a", "1")

			reply := h.send(t, "a", tc.token)

			assert.Equal(t, tc.want(catalog.English().Templates), reply.Text)
			assert.Equal(t, store.StageInteraction, h.session(t, "a").Stage)
		})
	}
}

func TestSamsungQuestionUsesCatalogContext(t *testing.T) {
	p := &scriptedProvider{answer: "We stock the Galaxy S24, S23 and A54."}
	h := newHarness(t, p)
	h.toInteraction(t, "a")

	reply := h.send(t, "a", "Do you have Samsung phones?")

	assert.Equal(t, "We stock the Galaxy S24, S23 and A54.", reply.Text)
	prompts := p.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Customer is asking about Samsung phones.")
	assert.Contains(t, prompts[0], "Galaxy S24")

	s := h.session(t, "a")
	require.Len(t, s.History, 1)
	assert.Equal(t, "Do you have Samsung phones?", s.History[0].Message)
	assert.Equal(t, reply.Text, s.History[0].Response)
	assert.Equal(t, []string{"Samsung"}, s.InquiredProducts)
}

func TestBackendFailureGivesFallback(t *testing.T) {
	h := newHarness(t, &scriptedProvider{err: errors.New("connection refused")})
	h.toInteraction(t, "a")

	reply := h.send(t, "a", "tell me about your shop")

	assert.Equal(t, englishFallback, reply.Text)
	assert.Equal(t, store.StageInteraction, h.session(t, "a").Stage)
}

func TestPanicInComposerBecomesErrorTemplate(t *testing.T) {
	h := newHarness(t, &scriptedProvider{panics: true})
	h.toInteraction(t, "a")

	reply := h.send(t, "a", "anything")

	assert.Equal(t, catalog.English().Templates.Error, reply.Text)
	assert.Contains(t, reply.Text, "0767410963")
	// the conversation survives
	assert.Equal(t, catalog.English().Templates.Welcome, h.send(t, "a", "#").Text)
}

func TestResetClearsHistoryAndKeepsLanguage(t *testing.T) {
	h := newHarness(t, &scriptedProvider{answer: "ok"})
	h.send(t, "a", "hi")
	h.send(t, "a", "3")
	h.send(t, "a", "1")
	h.send(t, "a", "samsung phone ekak oni")
	require.Len(t, h.session(t, "a").History, 1)

	reply := h.send(t, "a", "#")

	assert.Equal(t, catalog.English().Templates.Welcome, reply.Text)
	s := h.session(t, "a")
	assert.Equal(t, store.StageWelcome, s.Stage)
	assert.Equal(t, store.LanguageSinglish, s.Language)
	assert.Empty(t, s.History)
	assert.Empty(t, s.InquiredProducts)
	assert.True(t, s.IsFirstMessage)

	// the next message is greeted as a first contact
	assert.Equal(t, catalog.Singlish().Templates.Welcome, h.send(t, "a", "1").Text)
	s = h.session(t, "a")
	assert.Equal(t, store.StageWelcome, s.Stage)
	assert.False(t, s.IsFirstMessage)
	assert.Equal(t, catalog.English().Templates.Menu, h.send(t, "a", "1").Text)
}

func TestChangeLanguageToken(t *testing.T) {
	p := &scriptedProvider{answer: "ow, thiyenawa"}
	h := newHarness(t, p)
	h.toInteraction(t, "a")
	h.send(t, "a", "hello there")

	reply := h.send(t, "a", "*")
	assert.Equal(t, catalog.English().Templates.Welcome, reply.Text)
	s := h.session(t, "a")
	assert.Equal(t, store.StageWelcome, s.Stage)
	assert.Len(t, s.History, 1)

	h.send(t, "a", "1")
	h.send(t, "a", "1")
	h.send(t, "a", "*mata samsung phone ekak oni")

	s = h.session(t, "a")
	assert.Equal(t, store.LanguageSinglish, s.Language)
	assert.Equal(t, "mata samsung phone ekak oni", s.History[len(s.History)-1].Message)
	prompts := p.Prompts()
	assert.Contains(t, prompts[len(prompts)-1], "in Singlish")
}

func TestChangeLanguageWithTextOutsideInteraction(t *testing.T) {
	h := newHarness(t, &scriptedProvider{answer: "ok"})
	h.send(t, "a", "hello")
	h.send(t, "a", "1")

	reply := h.send(t, "a", "*mata phone ekak oni")

	assert.Equal(t, catalog.English().Templates.Welcome, reply.Text)
	s := h.session(t, "a")
	assert.Equal(t, store.StageWelcome, s.Stage)
	assert.Equal(t, store.LanguageEnglish, s.Language)
	assert.Empty(t, s.History)
}

func TestStockQuestionSkipsBackend(t *testing.T) {
	p := &scriptedProvider{err: errors.New("must not be called")}
	h := newHarness(t, p)
	h.toInteraction(t, "a")

	reply := h.send(t, "a", "is the Galaxy S24 in stock?")

	assert.Contains(t, reply.Text, "Galaxy S24")
	assert.Contains(t, reply.Text, "3 units")
	assert.Empty(t, p.Prompts())
	assert.Len(t, h.session(t, "a").History, 1)
}

func TestEmptyConversationIDRejected(t *testing.T) {
	h := newHarness(t, nil)

	reply, err := h.svc.HandleMessage(context.Background(), "  ", "hello")

	assert.ErrorIs(t, err, ErrEmptyConversationID)
	assert.Nil(t, reply)
}

func TestTurnsArePublishedOnlyForInteraction(t *testing.T) {
	h := newHarness(t, &scriptedProvider{answer: "sure"})
	h.toInteraction(t, "a")
	assert.Zero(t, h.turns.Len())

	h.send(t, "a", "can you replace the samsung battery")

	require.Equal(t, 1, h.turns.Len())
	var turn events.TurnRecorded
	require.NoError(t, json.Unmarshal(h.turns.payloads[0], &turn))
	assert.Equal(t, "a", turn.ConversationId)
	assert.Equal(t, string(intent.RepairInquiry), turn.Intent)
	assert.Equal(t, "Samsung", turn.Slots["brand"])
	assert.Equal(t, "sure", turn.Response)
}

func TestConcurrentMessagesOnOneConversation(t *testing.T) {
	h := newHarness(t, &scriptedProvider{answer: "ok"})
	h.toInteraction(t, "a")

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := h.svc.HandleMessage(context.Background(), "a", fmt.Sprintf("question %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	s := h.session(t, "a")
	assert.Len(t, s.History, store.MaxHistory)
	assert.Equal(t, n, h.turns.Len())
}

func TestConversationsAreIndependent(t *testing.T) {
	h := newHarness(t, &scriptedProvider{answer: "ok"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			h.send(t, id, "hi")
			h.send(t, id, "2")
		}(fmt.Sprintf("947700000%02d", i))
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		s := h.session(t, fmt.Sprintf("947700000%02d", i))
		assert.Equal(t, store.StageMenu, s.Stage)
		assert.Equal(t, store.LanguageSinhala, s.Language)
	}
	active, err := h.sessions.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, active)
}

func TestBlankInteractionMessageIsInvalidInput(t *testing.T) {
	p := &scriptedProvider{answer: "unused"}
	h := newHarness(t, p)
	h.toInteraction(t, "a")

	reply := h.send(t, "a", "   ")

	assert.Equal(t, catalog.English().Templates.InvalidInput, reply.Text)
	assert.Empty(t, p.Prompts())
	assert.Empty(t, h.session(t, "a").History)
	assert.Zero(t, h.turns.Len())
}

func TestActiveSessions(t *testing.T) {
	h := newHarness(t, nil)
	h.send(t, "a", "hi")
	h.send(t, "b", "hi")

	active, err := h.svc.ActiveSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, active)
}

type unavailableLock struct{}

func (unavailableLock) Acquire(ctx context.Context, key string) (func(), error) {
	return nil, errors.New("lock held by another instance")
}

func TestLockFailureGivesErrorTemplate(t *testing.T) {
	h := newHarness(t, nil)
	h.sessions.UseDistributedLock(unavailableLock{})

	reply := h.send(t, "a", "hello")

	assert.Equal(t, catalog.English().Templates.Error, reply.Text)
	_, found, err := h.sessions.Snapshot(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWhitespaceIsTrimmedBeforeRouting(t *testing.T) {
	h := newHarness(t, nil)
	h.send(t, "a", "hi")

	reply := h.send(t, "a", "  1 \n")

	assert.Equal(t, catalog.English().Templates.Menu, reply.Text)
}
