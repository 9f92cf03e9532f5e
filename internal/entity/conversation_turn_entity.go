package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationTurn struct {
	Id             uuid.UUID
	ConversationId string
	Stage          string
	Language       string
	Intent         string
	Message        string
	Response       string
	Image          string
	Slots          map[string]string
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
