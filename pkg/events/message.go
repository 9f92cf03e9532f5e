package events

import (
	"errors"
	"time"
)

const (
	InboundMessageType  = "inbound_message"
	OutboundMessageType = "outbound_message"
	TurnRecordedType    = "turn_recorded"

	// OccurredAtKey carries the event time inside payloads, RFC3339 encoded.
	OccurredAtKey = "occurred_at"
)

var ErrMalformedEvent = errors.New("malformed event payload")

// InboundMessage is a customer message delivered by a chat gateway.
type InboundMessage struct {
	ConversationId string
	Text           string
	ReceivedAt     time.Time
}

func (m InboundMessage) EventType() string { return InboundMessageType }

func (m InboundMessage) Timestamp() time.Time { return m.ReceivedAt }

func (m InboundMessage) Payload() map[string]interface{} {
	return map[string]interface{}{
		"conversation_id": m.ConversationId,
		"text":            m.Text,
		OccurredAtKey:     m.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
}

// InboundMessageFrom decodes a generic event into an InboundMessage.
func InboundMessageFrom(e BaseEvent) (InboundMessage, error) {
	id := e.String("conversation_id")
	if id == "" {
		return InboundMessage{}, ErrMalformedEvent
	}
	return InboundMessage{
		ConversationId: id,
		Text:           e.String("text"),
		ReceivedAt:     e.OccurredAt,
	}, nil
}

// OutboundMessage is a reply for the gateway to deliver.
type OutboundMessage struct {
	ConversationId string
	Text           string
	ImageURL       string
	SentAt         time.Time
}

func (m OutboundMessage) EventType() string { return OutboundMessageType }

func (m OutboundMessage) Timestamp() time.Time { return m.SentAt }

func (m OutboundMessage) Payload() map[string]interface{} {
	p := map[string]interface{}{
		"conversation_id": m.ConversationId,
		"text":            m.Text,
		OccurredAtKey:     m.SentAt.UTC().Format(time.RFC3339Nano),
	}
	if m.ImageURL != "" {
		p["image_url"] = m.ImageURL
	}
	return p
}

// TurnRecorded is emitted after the engine answers a message.
type TurnRecorded struct {
	ConversationId string            `json:"conversation_id"`
	Stage          string            `json:"stage"`
	Language       string            `json:"language"`
	Intent         string            `json:"intent,omitempty"`
	Message        string            `json:"message"`
	Response       string            `json:"response"`
	Image          string            `json:"image,omitempty"`
	Slots          map[string]string `json:"slots,omitempty"`
	RecordedAt     time.Time         `json:"recorded_at"`
}
