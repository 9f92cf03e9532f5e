package session

import (
	"context"
	"fmt"

	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/repository/contract"
	"shop-assistant-be/pkg/store"
)

// DistributedLocker serializes a conversation across processes sharing one store.
type DistributedLocker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// Manager handles session operations
type Manager struct {
	sessionRepo     contract.SessionRepository
	locks           *KeyedLocker
	remote          DistributedLocker
	defaultLanguage store.Language
	logger          logger.ILogger
}

// NewManager creates a new session manager
func NewManager(sessionRepo contract.SessionRepository, defaultLanguage store.Language, log logger.ILogger) *Manager {
	return &Manager{
		sessionRepo:     sessionRepo,
		locks:           NewKeyedLocker(),
		defaultLanguage: defaultLanguage,
		logger:          log,
	}
}

// UseDistributedLock adds a cross-process lock on top of the in-process one.
// Required whenever more than one instance writes to a shared store.
func (m *Manager) UseDistributedLock(l DistributedLocker) {
	m.remote = l
}

// DefaultLanguage is the language new and reset sessions start in.
func (m *Manager) DefaultLanguage() store.Language {
	return m.defaultLanguage
}

// Lock must be held across LoadOrCreate ... Save for one conversation.
func (m *Manager) Lock(ctx context.Context, sessionID string) (func(), error) {
	unlock := m.locks.Lock(sessionID)
	if m.remote == nil {
		return unlock, nil
	}

	release, err := m.remote.Acquire(ctx, sessionID)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("lock session: %w", err)
	}
	return func() {
		release()
		unlock()
	}, nil
}

// LoadOrCreate retrieves a session, lazily creating it for a new conversation.
func (m *Manager) LoadOrCreate(ctx context.Context, sessionID string) (*store.Session, error) {
	s, found, err := m.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		s = store.NewSession(sessionID, m.defaultLanguage)
		m.logger.Info("SessionManager", "Session created", map[string]interface{}{
			"session_id": sessionID,
			"language":   s.Language,
		})
	}
	return s, nil
}

// Save persists session state
func (m *Manager) Save(ctx context.Context, s *store.Session) error {
	if err := m.sessionRepo.Save(ctx, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the stored session without creating one.
func (m *Manager) Snapshot(ctx context.Context, sessionID string) (*store.Session, bool, error) {
	return m.sessionRepo.Get(ctx, sessionID)
}

// Drop removes a session, waiting for any in-flight message on it.
func (m *Manager) Drop(ctx context.Context, sessionID string) error {
	unlock, err := m.Lock(ctx, sessionID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := m.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	m.logger.Info("SessionManager", "Session dropped", map[string]interface{}{"session_id": sessionID})
	return nil
}

// Active reports how many sessions the store currently holds.
func (m *Manager) Active(ctx context.Context) (int, error) {
	return m.sessionRepo.Count(ctx)
}
