package service

import (
	"context"
	"encoding/json"

	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/repository/contract"
	"shop-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists recorded turns published on the in-process bus.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	turnRepo   contract.ConversationTurnRepository
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	turnRepo contract.ConversationTurnRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		turnRepo:   turnRepo,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.TurnRecorded
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("TranscriptConsumer", "Failed to unmarshal turn", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	turn := &entity.ConversationTurn{
		ConversationId: payload.ConversationId,
		Stage:          payload.Stage,
		Language:       payload.Language,
		Intent:         payload.Intent,
		Message:        payload.Message,
		Response:       payload.Response,
		Image:          payload.Image,
		Slots:          payload.Slots,
		CreatedAt:      payload.RecordedAt,
	}

	if err := cs.turnRepo.Create(ctx, turn); err != nil {
		// transcripts are best effort; a nack on gochannel redelivers immediately and would spin
		cs.logger.Error("TranscriptConsumer", "Failed to persist turn, dropping", map[string]interface{}{
			"session_id": payload.ConversationId,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Debug("TranscriptConsumer", "Turn persisted", map[string]interface{}{
		"session_id": payload.ConversationId,
		"turn_id":    turn.Id.String(),
	})
	msg.Ack()
}
