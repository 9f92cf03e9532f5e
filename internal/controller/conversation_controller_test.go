package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "operator-secret"

type mockConversationService struct {
	mock.Mock
}

func (m *mockConversationService) GetSession(ctx context.Context, conversationId string) (*dto.SessionSnapshotResponse, error) {
	args := m.Called(ctx, conversationId)
	res, _ := args.Get(0).(*dto.SessionSnapshotResponse)
	return res, args.Error(1)
}

func (m *mockConversationService) DropSession(ctx context.Context, conversationId string) error {
	return m.Called(ctx, conversationId).Error(0)
}

func (m *mockConversationService) GetTranscript(ctx context.Context, conversationId string, query dto.TranscriptQuery) (*dto.TranscriptResponse, error) {
	args := m.Called(ctx, conversationId, query)
	res, _ := args.Get(0).(*dto.TranscriptResponse)
	return res, args.Error(1)
}

func (m *mockConversationService) DeleteTranscript(ctx context.Context, conversationId string) error {
	return m.Called(ctx, conversationId).Error(0)
}

func (m *mockConversationService) SendOutbound(ctx context.Context, request *dto.OutboundMessageRequest) error {
	return m.Called(ctx, request).Error(0)
}

func newConversationApp(svc service.IConversationService) *fiber.App {
	app := fiber.New()
	NewConversationController(svc, testSecret).RegisterRoutes(app)
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "operator-1"})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestOperatorRoutesRequireToken(t *testing.T) {
	app := newConversationApp(&mockConversationService{})

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/conversations/1/session", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestGetSessionStatusMapping(t *testing.T) {
	svc := &mockConversationService{}
	svc.On("GetSession", mock.Anything, "known").Return(&dto.SessionSnapshotResponse{ConversationId: "known", Stage: "MENU"}, nil)
	svc.On("GetSession", mock.Anything, "missing").Return(nil, service.ErrSessionNotFound)
	app := newConversationApp(svc)

	tests := []struct {
		id   string
		code int
	}{
		{"known", fiber.StatusOK},
		{"missing", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/api/conversations/"+tt.id+"/session", nil)
			req.Header.Set("Authorization", bearer(t))
			res, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.StatusCode)
		})
	}
}

func TestDropSession(t *testing.T) {
	svc := &mockConversationService{}
	svc.On("DropSession", mock.Anything, "94770000000").Return(nil)
	app := newConversationApp(svc)

	req := httptest.NewRequest(fiber.MethodDelete, "/api/conversations/94770000000/session", nil)
	req.Header.Set("Authorization", bearer(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	svc.AssertExpectations(t)
}

func TestGetTranscriptParsesQuery(t *testing.T) {
	svc := &mockConversationService{}
	svc.On("GetTranscript", mock.Anything, "abc", dto.TranscriptQuery{Limit: 10, Offset: 5, Intent: "REPAIR_INQUIRY"}).
		Return(&dto.TranscriptResponse{ConversationId: "abc"}, nil)
	app := newConversationApp(svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/conversations/abc/transcript?limit=10&offset=5&intent=REPAIR_INQUIRY", nil)
	req.Header.Set("Authorization", bearer(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	svc.AssertExpectations(t)
}

func TestGetTranscriptDisabled(t *testing.T) {
	svc := &mockConversationService{}
	svc.On("GetTranscript", mock.Anything, "abc", mock.Anything).Return(nil, service.ErrTranscriptsDisabled)
	app := newConversationApp(svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/conversations/abc/transcript", nil)
	req.Header.Set("Authorization", bearer(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, res.StatusCode)
}

func TestDeleteTranscript(t *testing.T) {
	svc := &mockConversationService{}
	svc.On("DeleteTranscript", mock.Anything, "abc").Return(nil)
	app := newConversationApp(svc)

	req := httptest.NewRequest(fiber.MethodDelete, "/api/conversations/abc/transcript", nil)
	req.Header.Set("Authorization", bearer(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	svc.AssertExpectations(t)
}

func TestSendOutbound(t *testing.T) {
	svc := &mockConversationService{}
	svc.On("SendOutbound", mock.Anything, &dto.OutboundMessageRequest{Number: "94770000000", Message: "Your phone is ready"}).Return(nil)
	app := newConversationApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/api/messages/outbound", strings.NewReader(`{"number":"94770000000","message":"Your phone is ready"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusAccepted, res.StatusCode)
	svc.AssertExpectations(t)
}

func TestSendOutboundRejectsEmptyMessage(t *testing.T) {
	svc := &mockConversationService{}
	app := newConversationApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/api/messages/outbound", strings.NewReader(`{"number":"94770000000"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	svc.AssertNotCalled(t, "SendOutbound", mock.Anything, mock.Anything)
}
