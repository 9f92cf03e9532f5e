package service

import (
	"context"
	"errors"
	"time"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/repository/contract"
	"shop-assistant-be/internal/repository/specification"
	"shop-assistant-be/pkg/assistant/session"
	"shop-assistant-be/pkg/events"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrTranscriptsDisabled = errors.New("transcripts are not enabled")
	ErrMessagingDisabled   = errors.New("message bus is not configured")
)

const defaultTranscriptLimit = 50

// ChatDelivery pushes frames to web chat clients of a conversation.
type ChatDelivery interface {
	Deliver(conversationID string, frame interface{})
	Connected(conversationID string) int
}

// IConversationService is the operator view onto live sessions and stored transcripts.
type IConversationService interface {
	GetSession(ctx context.Context, conversationId string) (*dto.SessionSnapshotResponse, error)
	DropSession(ctx context.Context, conversationId string) error
	GetTranscript(ctx context.Context, conversationId string, query dto.TranscriptQuery) (*dto.TranscriptResponse, error)
	DeleteTranscript(ctx context.Context, conversationId string) error
	SendOutbound(ctx context.Context, request *dto.OutboundMessageRequest) error
}

type conversationService struct {
	sessions      *session.Manager
	turnRepo      contract.ConversationTurnRepository
	publisher     EventPublisher
	delivery      ChatDelivery
	publicBaseURL string
	logger        logger.ILogger
}

// NewConversationService creates the operator service. turnRepo, publisher and
// delivery may be nil when the matching backend is not configured.
func NewConversationService(
	sessions *session.Manager,
	turnRepo contract.ConversationTurnRepository,
	publisher EventPublisher,
	delivery ChatDelivery,
	publicBaseURL string,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions:      sessions,
		turnRepo:      turnRepo,
		publisher:     publisher,
		delivery:      delivery,
		publicBaseURL: publicBaseURL,
		logger:        log,
	}
}

func (c *conversationService) GetSession(ctx context.Context, conversationId string) (*dto.SessionSnapshotResponse, error) {
	sess, found, err := c.sessions.Snapshot(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	history := make([]dto.HistoryTurnDTO, 0, len(sess.History))
	for _, t := range sess.History {
		history = append(history, dto.HistoryTurnDTO{Message: t.Message, Response: t.Response, At: t.At})
	}

	connected := 0
	if c.delivery != nil {
		connected = c.delivery.Connected(conversationId)
	}

	return &dto.SessionSnapshotResponse{
		ConversationId:   sess.ID,
		Stage:            string(sess.Stage),
		Language:         string(sess.Language),
		IsFirstMessage:   sess.IsFirstMessage,
		History:          history,
		InquiredProducts: sess.InquiredProducts,
		LastActivity:     sess.LastActivity,
		ConnectedClients: connected,
	}, nil
}

func (c *conversationService) DropSession(ctx context.Context, conversationId string) error {
	_, found, err := c.sessions.Snapshot(ctx, conversationId)
	if err != nil {
		return err
	}
	if !found {
		return ErrSessionNotFound
	}
	return c.sessions.Drop(ctx, conversationId)
}

func (c *conversationService) GetTranscript(ctx context.Context, conversationId string, query dto.TranscriptQuery) (*dto.TranscriptResponse, error) {
	if c.turnRepo == nil {
		return nil, ErrTranscriptsDisabled
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultTranscriptLimit
	}

	filters := []specification.Specification{
		specification.ByConversationID{ConversationID: conversationId},
	}
	if query.Intent != "" {
		filters = append(filters, specification.Filter("intent", query.Intent))
	}

	total, err := c.turnRepo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	turns, err := c.turnRepo.FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at"},
		specification.Pagination{Limit: limit, Offset: query.Offset},
	)...)
	if err != nil {
		return nil, err
	}

	res := &dto.TranscriptResponse{
		ConversationId: conversationId,
		Total:          total,
		Turns:          make([]*dto.ConversationTurnResponse, 0, len(turns)),
	}
	for _, t := range turns {
		res.Turns = append(res.Turns, &dto.ConversationTurnResponse{
			Id:        t.Id,
			Stage:     t.Stage,
			Language:  t.Language,
			Intent:    t.Intent,
			Message:   t.Message,
			Response:  t.Response,
			Image:     PublicImageURL(c.publicBaseURL, t.Image),
			Slots:     t.Slots,
			CreatedAt: t.CreatedAt,
		})
	}
	return res, nil
}

func (c *conversationService) DeleteTranscript(ctx context.Context, conversationId string) error {
	if c.turnRepo == nil {
		return ErrTranscriptsDisabled
	}
	if err := c.turnRepo.DeleteByConversationId(ctx, conversationId); err != nil {
		return err
	}
	c.logger.Info("ConversationService", "Transcript deleted", map[string]interface{}{
		"session_id": conversationId,
	})
	return nil
}

// SendOutbound pushes an operator message to the gateway bus and to any open web chat.
func (c *conversationService) SendOutbound(ctx context.Context, request *dto.OutboundMessageRequest) error {
	if c.publisher == nil && c.delivery == nil {
		return ErrMessagingDisabled
	}

	imageURL := PublicImageURL(c.publicBaseURL, request.Image)

	if c.publisher != nil {
		err := c.publisher.Publish(ctx, events.OutboundMessage{
			ConversationId: request.Number,
			Text:           request.Message,
			ImageURL:       imageURL,
			SentAt:         time.Now(),
		})
		if err != nil {
			return err
		}
	}

	if c.delivery != nil {
		c.delivery.Deliver(request.Number, dto.WsChatResponse{Response: request.Message, Image: imageURL})
	}

	c.logger.Info("ConversationService", "Operator message sent", map[string]interface{}{
		"session_id": request.Number,
	})
	return nil
}
