package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboundMessageFrom(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := InboundMessage{ConversationId: "94770000000@c.us", Text: "hello", ReceivedAt: at}

	out, err := InboundMessageFrom(BaseEvent{Type: in.EventType(), Data: in.Payload(), OccurredAt: at})

	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestInboundMessageFromMissingID(t *testing.T) {
	_, err := InboundMessageFrom(BaseEvent{Data: map[string]interface{}{"text": "hi", "conversation_id": 42}})
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestOutboundPayloadOmitsEmptyImage(t *testing.T) {
	p := OutboundMessage{ConversationId: "c", Text: "t"}.Payload()
	_, ok := p["image_url"]
	assert.False(t, ok)

	p = OutboundMessage{ConversationId: "c", Text: "t", ImageURL: "http://x/images/a.jpeg"}.Payload()
	assert.Equal(t, "http://x/images/a.jpeg", p["image_url"])
}
