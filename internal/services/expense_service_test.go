package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

func TestAnalyzeExpenses_Aggregation(t *testing.T) {
	s := NewExpenseService()

	analysis, err := s.Analyze([]models.Expense{
		{Category: "Food", Amount: 50000},
		{Category: "Transport", Amount: 30000},
		{Category: "Housing", Amount: 80000},
	})
	require.NoError(t, err)

	assert.Equal(t, 160000, analysis.TotalExpenses)
	assert.Equal(t, "Housing", analysis.TopCategory)
	assert.Equal(t, models.CategorySummary{Amount: 50000, Count: 1}, analysis.Categories["Food"])
	assert.Len(t, analysis.Categories, 3)
}

func TestAnalyzeExpenses_RepeatCategoriesSum(t *testing.T) {
	s := NewExpenseService()

	analysis, err := s.Analyze([]models.Expense{
		{Category: "Food", Amount: 20000},
		{Category: "Transport", Amount: 50000},
		{Category: "Food", Amount: 40000},
	})
	require.NoError(t, err)

	assert.Equal(t, models.CategorySummary{Amount: 60000, Count: 2}, analysis.Categories["Food"])
	assert.Equal(t, "Food", analysis.TopCategory)
}

func TestAnalyzeExpenses_TopCategoryTieBreak(t *testing.T) {
	s := NewExpenseService()

	// on a tie, the category encountered first wins
	analysis, err := s.Analyze([]models.Expense{
		{Category: "A", Amount: 100},
		{Category: "B", Amount: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, "A", analysis.TopCategory)

	analysis, err = s.Analyze([]models.Expense{
		{Category: "B", Amount: 100},
		{Category: "A", Amount: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, "B", analysis.TopCategory)
}

func TestAnalyzeExpenses_HighSpendFlag(t *testing.T) {
	s := NewExpenseService()

	analysis, err := s.Analyze([]models.Expense{
		{Category: "Housing", Amount: 80000},
		{Category: "Food", Amount: 50000},
		{Category: "Transport", Amount: 30000},
	})
	require.NoError(t, err)

	// Housing is 50% of the total, above the 40% threshold
	require.Len(t, analysis.Recommendations, 1)
	assert.Contains(t, analysis.Recommendations[0], "Housing")
	assert.Contains(t, analysis.Recommendations[0], "50.0%")
}

func TestAnalyzeExpenses_DiscretionaryFlag(t *testing.T) {
	s := NewExpenseService()

	// Entertainment at 30%: under the 40% general threshold but over the
	// 20% discretionary one
	analysis, err := s.Analyze([]models.Expense{
		{Category: "Food", Amount: 70000},
		{Category: "Entertainment", Amount: 30000},
	})
	require.NoError(t, err)

	assert.Contains(t, analysis.Recommendations, "Consider cutting back on entertainment spending")
	// Food at 70% gets the general flag too
	assert.Len(t, analysis.Recommendations, 2)
}

func TestAnalyzeExpenses_Empty(t *testing.T) {
	s := NewExpenseService()

	analysis, err := s.Analyze(nil)
	require.NoError(t, err)
	assert.Zero(t, analysis.TotalExpenses)
	assert.Empty(t, analysis.TopCategory)
	assert.Empty(t, analysis.Recommendations)
}

func TestAnalyzeExpenses_NegativeAmount(t *testing.T) {
	s := NewExpenseService()

	_, err := s.Analyze([]models.Expense{{Category: "Food", Amount: -100}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
