package services

import (
	"fmt"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

// ExpenseService aggregates and flags spending categories.
type ExpenseService struct{}

func NewExpenseService() *ExpenseService {
	return &ExpenseService{}
}

// Analyze sums the expense list per category and flags outsized shares.
// The top category is the one with the largest aggregated amount; on a tie
// the category seen first in the list wins. Recommendations follow
// first-seen category order so the result is deterministic.
func (s *ExpenseService) Analyze(expenses []models.Expense) (models.ExpenseAnalysis, error) {
	for _, e := range expenses {
		if e.Amount < 0 {
			return models.ExpenseAnalysis{}, fmt.Errorf("%w: negative amount %d for category %q", ErrInvalidInput, e.Amount, e.Category)
		}
	}

	categories := make(map[string]models.CategorySummary, len(expenses))
	var order []string
	total := 0
	for _, e := range expenses {
		summary, seen := categories[e.Category]
		if !seen {
			order = append(order, e.Category)
		}
		summary.Amount += e.Amount
		summary.Count++
		categories[e.Category] = summary
		total += e.Amount
	}

	top := ""
	for _, cat := range order {
		if top == "" || categories[cat].Amount > categories[top].Amount {
			top = cat
		}
	}

	return models.ExpenseAnalysis{
		TotalExpenses:   total,
		Categories:      categories,
		TopCategory:     top,
		Recommendations: expenseRecommendations(categories, order, total),
	}, nil
}

func expenseRecommendations(categories map[string]models.CategorySummary, order []string, total int) []string {
	var recs []string
	if total == 0 {
		return recs
	}
	for _, cat := range order {
		share := float64(categories[cat].Amount) / float64(total)
		if share > highSpendShare {
			recs = append(recs, fmt.Sprintf("Spending on %s is too high (%.1f%%)", cat, share*100))
		}
		if cat == discretionaryCategory && share > discretionaryShare {
			recs = append(recs, "Consider cutting back on entertainment spending")
		}
	}
	return recs
}
