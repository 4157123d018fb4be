package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamanlab/bank-advisor-be/internal/models"
	"github.com/zamanlab/bank-advisor-be/internal/services"
	"github.com/zamanlab/bank-advisor-be/internal/session"
)

type AdvisorHandler struct {
	sessions   *session.Store
	goals      *services.GoalService
	expenses   *services.ExpenseService
	motivation *services.MotivationService
}

func NewAdvisorHandler(
	sessions *session.Store,
	goals *services.GoalService,
	expenses *services.ExpenseService,
	motivation *services.MotivationService,
) *AdvisorHandler {
	return &AdvisorHandler{
		sessions:   sessions,
		goals:      goals,
		expenses:   expenses,
		motivation: motivation,
	}
}

// AnalyzeGoal godoc
// @Summary Project a goal's feasibility
// @Description Uses the session profile's income and monthly expenses; timeline defaults to 12 months
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body object true "Goal analysis request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/goals/analyze [post]
func (h *AdvisorHandler) AnalyzeGoal(c *fiber.Ctx) error {
	var req struct {
		SessionID string      `json:"session_id"`
		Goal      models.Goal `json:"goal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.sessions.Profile(req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	timeline := req.Goal.TimelineMonths
	if timeline == 0 {
		timeline = 12
	}
	analysis, err := h.goals.Analyze(req.Goal, profile.Income, profile.MonthlyExpenses, timeline)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"analysis":   analysis,
		"session_id": req.SessionID,
	})
}

// AnalyzeExpenses godoc
// @Summary Aggregate and flag a spending list
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body object true "Expense analysis request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/expenses/analyze [post]
func (h *AdvisorHandler) AnalyzeExpenses(c *fiber.Ctx) error {
	var req struct {
		SessionID string           `json:"session_id,omitempty"`
		Expenses  []models.Expense `json:"expenses"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Expenses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Expenses are required"})
	}

	analysis, err := h.expenses.Analyze(req.Expenses)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"analysis":   analysis,
		"session_id": req.SessionID,
	})
}

// Motivate godoc
// @Summary Get an encouragement message for a goal
// @Description Progress is current savings over goal cost
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body models.Goal true "Goal with current savings"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /api/goals/motivation [post]
func (h *AdvisorHandler) Motivate(c *fiber.Ctx) error {
	var goal models.Goal
	if err := c.BodyParser(&goal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if goal.Cost <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Goal cost must be positive"})
	}

	progress := float64(goal.CurrentSavings) / float64(goal.Cost)
	return c.JSON(fiber.Map{
		"message": h.motivation.Message(progress, goal),
	})
}
