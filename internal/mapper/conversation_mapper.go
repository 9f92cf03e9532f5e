package mapper

import (
	"encoding/json"
	"time"

	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) TurnToEntity(t *model.ConversationTurn) *entity.ConversationTurn {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		d := t.DeletedAt.Time
		deletedAt = &d
	}

	var slots map[string]string
	if len(t.Slots) > 0 {
		// a malformed slots column only loses the slot detail, not the turn
		_ = json.Unmarshal(t.Slots, &slots)
	}

	return &entity.ConversationTurn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Stage:          t.Stage,
		Language:       t.Language,
		Intent:         t.Intent,
		Message:        t.Message,
		Response:       t.Response,
		Image:          t.Image,
		Slots:          slots,
		CreatedAt:      t.CreatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      t.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) TurnToModel(t *entity.ConversationTurn) *model.ConversationTurn {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	}

	var slots datatypes.JSON
	if len(t.Slots) > 0 {
		if raw, err := json.Marshal(t.Slots); err == nil {
			slots = datatypes.JSON(raw)
		}
	}

	return &model.ConversationTurn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Stage:          t.Stage,
		Language:       t.Language,
		Intent:         t.Intent,
		Message:        t.Message,
		Response:       t.Response,
		Image:          t.Image,
		Slots:          slots,
		CreatedAt:      t.CreatedAt,
		DeletedAt:      deletedAt,
	}
}
