package state

import (
	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/store"
)

// MenuOption is a main-menu category.
type MenuOption string

const (
	MenuPhones      MenuOption = "phones"
	MenuAccessories MenuOption = "accessories"
	MenuRepairs     MenuOption = "repairs"
	MenuContact     MenuOption = "contact"
	MenuExchange    MenuOption = "exchange"
)

var languageTokens = map[string]store.Language{
	constant.LanguageTokenEnglish:  store.LanguageEnglish,
	constant.LanguageTokenSinhala:  store.LanguageSinhala,
	constant.LanguageTokenSinglish: store.LanguageSinglish,
}

var menuTokens = map[string]MenuOption{
	constant.MenuTokenPhones:      MenuPhones,
	constant.MenuTokenAccessories: MenuAccessories,
	constant.MenuTokenRepairs:     MenuRepairs,
	constant.MenuTokenContact:     MenuContact,
	constant.MenuTokenExchange:    MenuExchange,
}

// LanguageForToken resolves a welcome-stage selection.
func LanguageForToken(token string) (store.Language, bool) {
	l, ok := languageTokens[token]
	return l, ok
}

// MenuOptionForToken resolves a menu-stage selection.
func MenuOptionForToken(token string) (MenuOption, bool) {
	o, ok := menuTokens[token]
	return o, ok
}

// Intro returns the category intro template for a menu option.
func (o MenuOption) Intro(t catalog.Templates) string {
	switch o {
	case MenuPhones:
		return t.Phones
	case MenuAccessories:
		return t.Accessories
	case MenuRepairs:
		return t.Repairs
	case MenuContact:
		return t.Contact
	case MenuExchange:
		return t.Exchange
	}
	return t.Menu
}

// Manager handles session stage transitions
type Manager struct {
	logger logger.ILogger
}

// NewManager creates a new state manager
func NewManager(log logger.ILogger) *Manager {
	return &Manager{logger: log}
}

// Reset returns the session to WELCOME, keeping its language.
func (m *Manager) Reset(s *store.Session) {
	from := s.Stage
	s.Reset()
	m.log(s, from, "reset")
}

// GreetFirstContact consumes the first-message flag. The stage does not change.
func (m *Manager) GreetFirstContact(s *store.Session) {
	s.IsFirstMessage = false
	m.logger.Debug("StateManager", "First contact", map[string]interface{}{"session_id": s.ID})
}

// SelectLanguage pins the language chosen on the welcome screen and moves to MENU.
func (m *Manager) SelectLanguage(s *store.Session, language store.Language) {
	from := s.Stage
	s.Language = language
	s.Stage = store.StageMenu
	m.log(s, from, "language selected")
}

// EnterInteraction moves from MENU into free-form questions.
func (m *Manager) EnterInteraction(s *store.Session, option MenuOption) {
	from := s.Stage
	s.Stage = store.StageInteraction
	m.logger.Info("StateManager", "Stage transition", map[string]interface{}{
		"session_id": s.ID,
		"from":       from,
		"to":         s.Stage,
		"reason":     "menu option",
		"option":     option,
	})
}

// ReturnToLanguageSelection shows the welcome screen again without clearing history.
func (m *Manager) ReturnToLanguageSelection(s *store.Session) {
	from := s.Stage
	s.Stage = store.StageWelcome
	m.log(s, from, "change language requested")
}

// PinDetectedLanguage switches language from an explicit change-language request.
func (m *Manager) PinDetectedLanguage(s *store.Session, language store.Language) {
	if s.Language == language {
		return
	}
	m.logger.Info("StateManager", "Language switched", map[string]interface{}{
		"session_id": s.ID,
		"from":       s.Language,
		"to":         language,
	})
	s.Language = language
}

func (m *Manager) log(s *store.Session, from store.Stage, reason string) {
	m.logger.Info("StateManager", "Stage transition", map[string]interface{}{
		"session_id": s.ID,
		"from":       from,
		"to":         s.Stage,
		"language":   s.Language,
		"reason":     reason,
	})
}
