package controller

import (
	"errors"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/serverutils"
	"shop-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	GetSession(ctx *fiber.Ctx) error
	DropSession(ctx *fiber.Ctx) error
	GetTranscript(ctx *fiber.Ctx) error
	DeleteTranscript(ctx *fiber.Ctx) error
	SendOutbound(ctx *fiber.Ctx) error
}

type conversationController struct {
	service   service.IConversationService
	jwtSecret string
}

func NewConversationController(service service.IConversationService, jwtSecret string) IConversationController {
	return &conversationController{service: service, jwtSecret: jwtSecret}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Use(serverutils.NewJwtMiddleware(c.jwtSecret))
	h.Get("/conversations/:id/session", c.GetSession)
	h.Delete("/conversations/:id/session", c.DropSession)
	h.Get("/conversations/:id/transcript", c.GetTranscript)
	h.Delete("/conversations/:id/transcript", c.DeleteTranscript)
	h.Post("/messages/outbound", c.SendOutbound)
}

func (c *conversationController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.GetSession(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return writeServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session loaded", res))
}

func (c *conversationController) DropSession(ctx *fiber.Ctx) error {
	if err := c.service.DropSession(ctx.UserContext(), ctx.Params("id")); err != nil {
		return writeServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session dropped", nil))
}

func (c *conversationController) GetTranscript(ctx *fiber.Ctx) error {
	var query dto.TranscriptQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid query"))
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.service.GetTranscript(ctx.UserContext(), ctx.Params("id"), query)
	if err != nil {
		return writeServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Transcript loaded", res))
}

func (c *conversationController) DeleteTranscript(ctx *fiber.Ctx) error {
	if err := c.service.DeleteTranscript(ctx.UserContext(), ctx.Params("id")); err != nil {
		return writeServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Transcript deleted", nil))
}

func (c *conversationController) SendOutbound(ctx *fiber.Ctx) error {
	var req dto.OutboundMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.service.SendOutbound(ctx.UserContext(), &req); err != nil {
		return writeServiceError(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.Response{
		Success: true,
		Code:    fiber.StatusAccepted,
		Message: "Message published",
	})
}

func writeServiceError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrTranscriptsDisabled), errors.Is(err, service.ErrMessagingDisabled):
		code = fiber.StatusServiceUnavailable
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}
