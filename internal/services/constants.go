package services

const (
	// Goal analysis thresholds
	lowSavingsFloor   = 50_000 // monthly savings below this triggers budget-review advice
	longHorizonMonths = 10     // required months above this triggers acceleration advice
	defaultGoalCost   = 1_000_000
	defaultTimeline   = 12 // months, when the goal does not carry one

	// Expense analysis thresholds, engine-wide (not per-user)
	highSpendShare        = 0.40
	discretionaryShare    = 0.20
	discretionaryCategory = "Entertainment"
)

// goalCostEstimates maps a goal type to a rough cost when the goal itself
// does not carry one. Amounts are in KZT.
var goalCostEstimates = map[string]int{
	"apartment": 15_000_000,
	"house":     25_000_000,
	"education": 2_000_000,
	"surgery":   500_000,
	"travel":    1_000_000,
	"car":       3_000_000,
	"wedding":   2_000_000,
}
