package store

import (
	"strings"
	"time"
)

// Stage is the coarse dialogue phase of a conversation.
type Stage string

const (
	StageWelcome Stage = "WELCOME"
	// StageLanguageSelect is merged into StageWelcome: the welcome template is the language prompt.
	StageLanguageSelect Stage = "LANGUAGE_SELECT"
	StageMenu           Stage = "MENU"
	StageInteraction    Stage = "INTERACTION"
)

// Language is one of the closed set of supported conversation languages.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageSinhala  Language = "sinhala"
	LanguageSinglish Language = "singlish"
)

// SupportedLanguages lists every language the assistant can converse in.
var SupportedLanguages = []Language{LanguageEnglish, LanguageSinhala, LanguageSinglish}

// ParseLanguage maps a config or request value onto the closed language set.
func ParseLanguage(value string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(value))) {
	case LanguageEnglish:
		return LanguageEnglish, true
	case LanguageSinhala:
		return LanguageSinhala, true
	case LanguageSinglish:
		return LanguageSinglish, true
	}
	return "", false
}

// MaxHistory bounds the rolling conversation history.
const MaxHistory = 10

// Turn is one processed (message, response) exchange. Images are never stored.
type Turn struct {
	Message  string    `json:"message"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}

// Session represents the dialogue state of one external conversation (e.g. a phone number)
type Session struct {
	ID               string    `json:"id"`
	Stage            Stage     `json:"stage"`
	Language         Language  `json:"language"`
	IsFirstMessage   bool      `json:"is_first_message"`
	History          []Turn    `json:"history"`
	InquiredProducts []string  `json:"inquired_products"`
	LastActivity     time.Time `json:"last_activity"`
}

// NewSession creates a session at the welcome stage.
func NewSession(id string, language Language) *Session {
	return &Session{
		ID:               id,
		Stage:            StageWelcome,
		Language:         language,
		IsFirstMessage:   true,
		History:          make([]Turn, 0, MaxHistory),
		InquiredProducts: make([]string, 0),
		LastActivity:     time.Now(),
	}
}

// Reset returns the session to its creation defaults, keeping the language.
func (s *Session) Reset() {
	language := s.Language
	*s = *NewSession(s.ID, language)
}

// Touch marks the session as active now.
func (s *Session) Touch() {
	s.LastActivity = time.Now()
}

// RecordTurn appends an exchange to the history, evicting the oldest entry on overflow.
func (s *Session) RecordTurn(message, response string) {
	now := time.Now()
	s.History = append(s.History, Turn{Message: message, Response: response, At: now})
	if overflow := len(s.History) - MaxHistory; overflow > 0 {
		s.History = append(s.History[:0:0], s.History[overflow:]...)
	}
	s.LastActivity = now
}

// LastTurns returns at most n of the most recent turns, oldest first.
func (s *Session) LastTurns(n int) []Turn {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if n > len(s.History) {
		n = len(s.History)
	}
	return s.History[len(s.History)-n:]
}

// TrackProduct remembers a brand the customer asked about. Returns false if it was already known.
func (s *Session) TrackProduct(brand string) bool {
	if brand == "" {
		return false
	}
	for _, known := range s.InquiredProducts {
		if known == brand {
			return false
		}
	}
	s.InquiredProducts = append(s.InquiredProducts, brand)
	return true
}

// Clone returns a deep copy so stores never share mutable slices with callers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.History = append(make([]Turn, 0, MaxHistory), s.History...)
	c.InquiredProducts = append(make([]string, 0, len(s.InquiredProducts)), s.InquiredProducts...)
	return &c
}
