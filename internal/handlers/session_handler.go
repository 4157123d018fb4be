package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamanlab/bank-advisor-be/internal/catalog"
	"github.com/zamanlab/bank-advisor-be/internal/models"
	"github.com/zamanlab/bank-advisor-be/internal/session"
)

type SessionHandler struct {
	sessions *session.Store
	engine   *catalog.RecommendationEngine
}

func NewSessionHandler(sessions *session.Store, engine *catalog.RecommendationEngine) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		engine:   engine,
	}
}

// InitSession godoc
// @Summary Start a new advisory session
// @Description Creates an empty profile and transcript, returns the session id
// @Tags Sessions
// @Produce json
// @Success 201 {object} map[string]string
// @Router /api/sessions [post]
func (h *SessionHandler) InitSession(c *fiber.Ctx) error {
	id := h.sessions.Init()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session_id": id})
}

// DestroySession godoc
// @Summary End a session
// @Description Removes the session's profile and transcript
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Router /api/sessions/{id} [delete]
func (h *SessionHandler) DestroySession(c *fiber.Ctx) error {
	h.sessions.Destroy(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearTranscript godoc
// @Summary Clear a session's conversation
// @Description Empties the transcript; the profile is retained
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /api/sessions/{id}/clear [post]
func (h *SessionHandler) ClearTranscript(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.sessions.ClearTranscript(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "cleared", "session_id": id})
}

// GetProfile godoc
// @Summary Get the session's profile
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} map[string]interface{}
// @Router /api/sessions/{id}/profile [get]
func (h *SessionHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.sessions.Profile(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary Update the session's profile
// @Description Shallow merge: supplied fields overwrite, omitted fields are kept
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param profile body models.UpdateProfileRequest true "Partial profile"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/sessions/{id}/profile [patch]
func (h *SessionHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	profile, err := h.sessions.UpdateProfile(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// AddGoal godoc
// @Summary Add a goal to the session's profile
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param goal body models.Goal true "Goal"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/sessions/{id}/goals [post]
func (h *SessionHandler) AddGoal(c *fiber.Ctx) error {
	var goal models.Goal
	if err := c.BodyParser(&goal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if goal.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Goal name is required"})
	}
	profile, err := h.sessions.AddGoal(c.Params("id"), goal)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetRecommendations godoc
// @Summary Recommend products for the session's profile
// @Description Up to 5 products assembled by ordered rule application
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/sessions/{id}/recommendations [get]
func (h *SessionHandler) GetRecommendations(c *fiber.Ctx) error {
	profile, err := h.sessions.Profile(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	recommendations := h.engine.Recommend(profile)
	return c.JSON(fiber.Map{
		"recommendations": recommendations,
		"total":           len(recommendations),
	})
}
