package mapper

import (
	"testing"
	"time"

	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestTurnToModelEncodesSlots(t *testing.T) {
	m := NewConversationMapper()

	out := m.TurnToModel(&entity.ConversationTurn{
		Id:             uuid.New(),
		ConversationId: "94770000000",
		Message:        "samsung battery",
		Slots:          map[string]string{"brand": "Samsung", "service": "battery replacement"},
	})

	assert.JSONEq(t, `{"brand":"Samsung","service":"battery replacement"}`, string(out.Slots))
	assert.False(t, out.DeletedAt.Valid)
	assert.Nil(t, m.TurnToModel(nil))
}

func TestTurnToEntity(t *testing.T) {
	m := NewConversationMapper()
	now := time.Now()

	out := m.TurnToEntity(&model.ConversationTurn{
		ConversationId: "c",
		Slots:          datatypes.JSON(`{"model":"Galaxy S24"}`),
		DeletedAt:      gorm.DeletedAt{Time: now, Valid: true},
	})

	assert.Equal(t, "Galaxy S24", out.Slots["model"])
	assert.True(t, out.IsDeleted)
	assert.Equal(t, now, *out.DeletedAt)

	broken := m.TurnToEntity(&model.ConversationTurn{Slots: datatypes.JSON(`{not json`)})
	assert.Empty(t, broken.Slots)
}
