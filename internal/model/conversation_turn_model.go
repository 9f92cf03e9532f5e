package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ConversationTurn struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId string         `gorm:"type:varchar(255);not null;index"`
	Stage          string         `gorm:"type:varchar(32);not null"`
	Language       string         `gorm:"type:varchar(32);not null"`
	Intent         string         `gorm:"type:varchar(64)"`
	Message        string         `gorm:"type:text;not null"`
	Response       string         `gorm:"type:text;not null"`
	Image          string         `gorm:"type:varchar(512)"`
	Slots          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (ConversationTurn) TableName() string {
	return "conversation_turns"
}
