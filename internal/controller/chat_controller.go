package controller

import (
	"context"
	"errors"

	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/pkg/serverutils"
	"shop-assistant-be/internal/service"
	internalWS "shop-assistant-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service       service.IChatbotService
	hub           *internalWS.Hub
	publicBaseURL string
	logger        logger.ILogger
}

func NewChatController(service service.IChatbotService, hub *internalWS.Hub, publicBaseURL string, log logger.ILogger) IChatController {
	return &chatController{
		service:       service,
		hub:           hub,
		publicBaseURL: publicBaseURL,
		logger:        log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Health)
	r.Post("/send", c.Send)
	r.Get("/ws/chat/:number", c.Chat)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	res := dto.HealthResponse{
		Message: "Sun Mobile shop assistant is running",
		Status:  "ok",
	}

	active, err := c.service.ActiveSessions(ctx.UserContext())
	if err != nil {
		// the session store is unreachable but the process still answers
		c.logger.Warn("ChatController", "Failed to count sessions", map[string]interface{}{
			"error": err.Error(),
		})
		res.Status = "degraded"
	}
	res.ActiveSessions = active
	return ctx.JSON(res)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if req.Number == constant.BroadcastConversationID {
		return ctx.JSON(dto.SendMessageResponse{Success: true, Message: "Broadcast message ignored"})
	}

	reply, err := c.service.HandleMessage(ctx.UserContext(), req.Number, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyConversationID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}

	return ctx.JSON(dto.SendMessageResponse{
		Success:  true,
		Message:  "Message processed",
		Response: reply.Text,
		Image:    service.PublicImageURL(c.publicBaseURL, reply.Image),
	})
}

// Chat upgrades to a web chat websocket bound to the conversation in the path.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	conversationID := ctx.Params("number")
	if conversationID == "" || conversationID == constant.BroadcastConversationID {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid conversation"))
	}

	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("ChatController", "Web chat connected", map[string]interface{}{"session_id": conversationID})
		internalWS.ServeWs(c.hub, conn, conversationID, c.answer)
		c.logger.Info("ChatController", "Web chat closed", map[string]interface{}{"session_id": conversationID})
	})(ctx)
}

func (c *chatController) answer(ctx context.Context, conversationID, text string) (dto.WsChatResponse, error) {
	reply, err := c.service.HandleMessage(ctx, conversationID, text)
	if err != nil {
		return dto.WsChatResponse{}, err
	}
	return dto.WsChatResponse{
		Response: reply.Text,
		Image:    service.PublicImageURL(c.publicBaseURL, reply.Image),
	}, nil
}
