package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/service"
	"shop-assistant-be/pkg/assistant/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChatbotService struct {
	mock.Mock
}

func (m *mockChatbotService) HandleMessage(ctx context.Context, conversationID, text string) (*response.Reply, error) {
	args := m.Called(ctx, conversationID, text)
	reply, _ := args.Get(0).(*response.Reply)
	return reply, args.Error(1)
}

func (m *mockChatbotService) ActiveSessions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newChatApp(svc service.IChatbotService) *fiber.App {
	app := fiber.New()
	NewChatController(svc, nil, "http://shop.lk", logger.NewNopLogger()).RegisterRoutes(app)
	return app
}

func postSend(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return res.StatusCode, out
}

func TestHealth(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("ActiveSessions", mock.Anything).Return(3, nil)
	app := newChatApp(svc)

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var out dto.HealthResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, 3, out.ActiveSessions)
}

func TestHealthDegradedWhenStoreFails(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("ActiveSessions", mock.Anything).Return(0, errors.New("redis down"))
	app := newChatApp(svc)

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var out dto.HealthResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, "degraded", out.Status)
}

func TestSendReturnsReplyWithAbsoluteImage(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("HandleMessage", mock.Anything, "94771234567", "samsung a54").
		Return(&response.Reply{Text: "Samsung A54 is available", Image: "/phones/samsung/a54.jpeg"}, nil)
	app := newChatApp(svc)

	code, out := postSend(t, app, `{"number":"94771234567","message":"samsung a54"}`)

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Samsung A54 is available", out["response"])
	assert.Equal(t, "http://shop.lk/images/phones/samsung/a54.jpeg", out["image"])
	svc.AssertExpectations(t)
}

func TestSendOmitsImageWhenNone(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("HandleMessage", mock.Anything, "1", "hello").Return(&response.Reply{Text: "Welcome"}, nil)
	app := newChatApp(svc)

	_, out := postSend(t, app, `{"number":"1","message":"hello"}`)

	_, hasImage := out["image"]
	assert.False(t, hasImage)
}

func TestSendIgnoresBroadcast(t *testing.T) {
	svc := &mockChatbotService{}
	app := newChatApp(svc)

	code, out := postSend(t, app, `{"number":"status@broadcast","message":"new status"}`)

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, out["success"])
	svc.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendValidation(t *testing.T) {
	svc := &mockChatbotService{}
	app := newChatApp(svc)

	tests := []struct {
		name string
		body string
	}{
		{"missing number", `{"message":"hi"}`},
		{"missing message", `{"number":"1"}`},
		{"not json", `number=1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := postSend(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, code)
			assert.Equal(t, false, out["success"])
		})
	}
	svc.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatRequiresUpgrade(t *testing.T) {
	app := newChatApp(&mockChatbotService{})

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ws/chat/94771234567", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, res.StatusCode)
}
