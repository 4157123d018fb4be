package services

import (
	"fmt"
	"strings"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

// GoalService projects savings-goal feasibility.
type GoalService struct{}

func NewGoalService() *GoalService {
	return &GoalService{}
}

// Analyze projects whether a goal is reachable from the monthly surplus.
// When income does not exceed expenses there is no finite saving horizon:
// the result is marked indeterminate with Achievable false and
// RequiredMonths zero, never a negative or unbounded value.
func (s *GoalService) Analyze(goal models.Goal, income, monthlyExpenses, timelineMonths int) (models.GoalAnalysis, error) {
	if timelineMonths <= 0 {
		return models.GoalAnalysis{}, fmt.Errorf("%w: timeline must be positive, got %d", ErrInvalidInput, timelineMonths)
	}

	goalCost := goal.Cost
	if goalCost <= 0 {
		goalCost = estimateGoalCost(goal.Type)
	}

	monthlySavings := income - monthlyExpenses
	if monthlySavings <= 0 {
		return models.GoalAnalysis{
			GoalCost:        goalCost,
			MonthlySavings:  monthlySavings,
			RequiredMonths:  0,
			Achievable:      false,
			Indeterminate:   true,
			Recommendations: goalRecommendations(monthlySavings, 0),
		}, nil
	}

	requiredMonths := ceilDiv(goalCost, monthlySavings)
	return models.GoalAnalysis{
		GoalCost:        goalCost,
		MonthlySavings:  monthlySavings,
		RequiredMonths:  requiredMonths,
		Achievable:      requiredMonths <= timelineMonths,
		Recommendations: goalRecommendations(monthlySavings, requiredMonths),
	}, nil
}

func estimateGoalCost(goalType string) int {
	if cost, ok := goalCostEstimates[strings.ToLower(goalType)]; ok {
		return cost
	}
	return defaultGoalCost
}

func goalRecommendations(monthlySavings, requiredMonths int) []string {
	var recs []string
	if monthlySavings < lowSavingsFloor {
		recs = append(recs,
			"Look into ways of increasing your income",
			"Review your expenses for saving opportunities",
		)
	}
	if requiredMonths > longHorizonMonths {
		recs = append(recs,
			"Consider investment products to speed up saving",
			"You may want to scale the goal down",
		)
	}
	recs = append(recs,
		"Open a Halal savings deposit for this goal",
		"Set up automatic transfers into savings",
	)
	return recs
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
