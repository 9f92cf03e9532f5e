package service

import (
	"context"
	"errors"
	"time"

	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/pkg/events"
	pktNats "shop-assistant-be/pkg/nats"
)

// EventPublisher publishes events on the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventSubscriber attaches durable handlers to bus subjects.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

type IInboundService interface {
	Start(ctx context.Context) error
	Handle(ctx context.Context, event events.BaseEvent) error
}

// inboundService bridges a chat gateway on NATS to the dialogue engine.
type inboundService struct {
	chatbot       IChatbotService
	subscriber    EventSubscriber
	publisher     EventPublisher
	publicBaseURL string
	logger        logger.ILogger
}

func NewInboundService(
	chatbot IChatbotService,
	subscriber EventSubscriber,
	publisher EventPublisher,
	publicBaseURL string,
	log logger.ILogger,
) IInboundService {
	return &inboundService{
		chatbot:       chatbot,
		subscriber:    subscriber,
		publisher:     publisher,
		publicBaseURL: publicBaseURL,
		logger:        log,
	}
}

func (s *inboundService) Start(ctx context.Context) error {
	return s.subscriber.Subscribe(ctx, pktNats.Subject(events.InboundMessageType), constant.InboundConsumerName, s.Handle)
}

// Handle answers one inbound gateway message. The engine has already advanced the
// session once HandleMessage returns, so later failures are logged, never redelivered.
func (s *inboundService) Handle(ctx context.Context, event events.BaseEvent) error {
	in, err := events.InboundMessageFrom(event)
	if err != nil {
		s.logger.Warn("InboundService", "Skipping malformed inbound message", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
		return nil
	}

	if in.ConversationId == constant.BroadcastConversationID {
		return nil
	}

	reply, err := s.chatbot.HandleMessage(ctx, in.ConversationId, in.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyConversationID) {
			return nil
		}
		return err
	}

	out := events.OutboundMessage{
		ConversationId: in.ConversationId,
		Text:           reply.Text,
		ImageURL:       PublicImageURL(s.publicBaseURL, reply.Image),
		SentAt:         time.Now(),
	}
	if err := s.publisher.Publish(ctx, out); err != nil {
		s.logger.Error("InboundService", "Failed to publish reply", map[string]interface{}{
			"session_id": in.ConversationId,
			"error":      err.Error(),
		})
		return nil
	}

	s.logger.Info("InboundService", "Reply published", map[string]interface{}{
		"session_id": in.ConversationId,
		"has_image":  out.ImageURL != "",
		"latency_ms": time.Since(in.ReceivedAt).Milliseconds(),
	})
	return nil
}
