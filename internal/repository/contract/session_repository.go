package contract

import (
	"context"

	"shop-assistant-be/pkg/store"
)

// SessionRepository stores live dialogue sessions. Implementations expire idle sessions.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*store.Session, bool, error)
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
