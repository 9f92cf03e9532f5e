package dto

import (
	"time"

	"github.com/google/uuid"
)

type HistoryTurnDTO struct {
	Message  string    `json:"message"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}

type SessionSnapshotResponse struct {
	ConversationId   string           `json:"conversation_id"`
	Stage            string           `json:"stage"`
	Language         string           `json:"language"`
	IsFirstMessage   bool             `json:"is_first_message"`
	History          []HistoryTurnDTO `json:"history"`
	InquiredProducts []string         `json:"inquired_products"`
	LastActivity     time.Time        `json:"last_activity"`
	ConnectedClients int              `json:"connected_clients"`
}

type ConversationTurnResponse struct {
	Id        uuid.UUID         `json:"id"`
	Stage     string            `json:"stage"`
	Language  string            `json:"language"`
	Intent    string            `json:"intent,omitempty"`
	Message   string            `json:"message"`
	Response  string            `json:"response"`
	Image     string            `json:"image,omitempty"`
	Slots     map[string]string `json:"slots,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type TranscriptResponse struct {
	ConversationId string                      `json:"conversation_id"`
	Total          int64                       `json:"total"`
	Turns          []*ConversationTurnResponse `json:"turns"`
}

type TranscriptQuery struct {
	Limit  int    `query:"limit" validate:"min=0,max=200"`
	Offset int    `query:"offset" validate:"min=0"`
	Intent string `query:"intent" validate:"omitempty,max=64"`
}

type OutboundMessageRequest struct {
	Number  string `json:"number" validate:"required,max=128"`
	Message string `json:"message" validate:"required,max=4096"`
	Image   string `json:"image,omitempty" validate:"omitempty,max=512"`
}
