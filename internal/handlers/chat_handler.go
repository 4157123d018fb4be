package handlers

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/zamanlab/bank-advisor-be/internal/services"
)

// Embedder is the embedding slice of the language-model client.
type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type ChatHandler struct {
	chat     *services.ChatService
	embedder Embedder
}

func NewChatHandler(chat *services.ChatService, embedder Embedder) *ChatHandler {
	return &ChatHandler{
		chat:     chat,
		embedder: embedder,
	}
}

// Chat godoc
// @Summary Send a chat message
// @Description Runs one conversation turn; context selects the system prompt variant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object true "Chat request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
		Context   string `json:"context,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reply, err := h.chat.HandleMessage(c.Context(), req.SessionID, req.Message, req.Context)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    reply,
		"session_id": req.SessionID,
	})
}

// ChatAudio godoc
// @Summary Send a voice message
// @Description Transcribes the recording and runs it through the chat flow
// @Tags Chat
// @Accept mpfd
// @Produce json
// @Param session_id formData string true "Session ID"
// @Param audio formData file true "Audio recording"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/chat/audio [post]
func (h *ChatHandler) ChatAudio(c *fiber.Ctx) error {
	sessionID := c.FormValue("session_id")
	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Audio file is required"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read audio file"})
	}
	defer f.Close()
	audio, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read audio file"})
	}

	reply, transcribed, err := h.chat.HandleAudio(c.Context(), sessionID, audio)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":          reply,
		"transcribed_text": transcribed,
		"session_id":       sessionID,
	})
}

// CreateEmbedding godoc
// @Summary Embed a text
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object true "Embedding request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/embedding [post]
func (h *ChatHandler) CreateEmbedding(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text is required"})
	}

	embedding, err := h.embedder.CreateEmbedding(c.Context(), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"embedding": embedding,
		"text":      req.Text,
	})
}
