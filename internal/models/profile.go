package models

// Risk tolerance levels
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

type Expense struct {
	Category string `json:"category"`
	Amount   int    `json:"amount"`
}

type Goal struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Cost           int    `json:"cost,omitempty"`
	TimelineMonths int    `json:"timeline_months,omitempty"`
	CurrentSavings int    `json:"current_savings,omitempty"`
}

type Preferences struct {
	Islamic bool `json:"islamic"`
}

// UserProfile is the per-session financial profile. One profile per session,
// mutated only through UpdateProfileRequest merges and goal additions.
type UserProfile struct {
	Income          int         `json:"income"`
	MonthlyExpenses int         `json:"monthly_expenses"`
	Expenses        []Expense   `json:"expenses"`
	Goals           []Goal      `json:"goals"`
	RiskTolerance   string      `json:"risk_tolerance"`
	Preferences     Preferences `json:"preferences"`
	Type            string      `json:"type,omitempty"`
}

// UpdateProfileRequest carries a partial profile. Nil fields keep their
// prior value; set fields overwrite (shallow merge).
type UpdateProfileRequest struct {
	Income          *int         `json:"income,omitempty"`
	MonthlyExpenses *int         `json:"monthly_expenses,omitempty"`
	Expenses        *[]Expense   `json:"expenses,omitempty"`
	Goals           *[]Goal      `json:"goals,omitempty"`
	RiskTolerance   *string      `json:"risk_tolerance,omitempty"`
	Preferences     *Preferences `json:"preferences,omitempty"`
	Type            *string      `json:"type,omitempty"`
}
