package models

// GoalAnalysis is the result of a goal feasibility projection.
// Indeterminate is set when monthly savings are zero or negative: no finite
// saving horizon exists, so RequiredMonths stays 0 and Achievable false.
type GoalAnalysis struct {
	GoalCost        int      `json:"goal_cost"`
	MonthlySavings  int      `json:"monthly_savings"`
	RequiredMonths  int      `json:"required_months"`
	Achievable      bool     `json:"achievable"`
	Indeterminate   bool     `json:"indeterminate,omitempty"`
	Recommendations []string `json:"recommendations"`
}

type CategorySummary struct {
	Amount int `json:"amount"`
	Count  int `json:"count"`
}

// ExpenseAnalysis aggregates a spending list per category.
// TopCategory is the category with the largest aggregated amount; on a tie
// the category encountered first in the expense list wins.
type ExpenseAnalysis struct {
	TotalExpenses   int                        `json:"total_expenses"`
	Categories      map[string]CategorySummary `json:"categories"`
	TopCategory     string                     `json:"top_category,omitempty"`
	Recommendations []string                   `json:"recommendations"`
}
