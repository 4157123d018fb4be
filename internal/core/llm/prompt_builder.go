package llm

import (
	"fmt"
	"strings"

	"github.com/zamanlab/bank-advisor-be/internal/catalog"
	"github.com/zamanlab/bank-advisor-be/internal/models"
)

// Request context values selecting the system prompt variant.
const (
	ContextGoalPlanning    = "goal_planning"
	ContextExpenseAnalysis = "expense_analysis"
)

const advisorPromptProductLimit = 10

// PromptBuilder constructs system prompts from live catalog contents, so
// the assistant only ever talks about products the bank actually offers.
type PromptBuilder struct {
	catalog *catalog.Catalog
}

func NewPromptBuilder(c *catalog.Catalog) *PromptBuilder {
	return &PromptBuilder{catalog: c}
}

// SystemPrompt returns the prompt variant for the given request context.
// Unknown contexts fall back to the general financial advisor prompt.
func (b *PromptBuilder) SystemPrompt(requestContext string) string {
	switch requestContext {
	case ContextGoalPlanning:
		return b.goalPlanningPrompt()
	case ContextExpenseAnalysis:
		return b.expenseAnalysisPrompt()
	default:
		return b.advisorPrompt()
	}
}

func (b *PromptBuilder) advisorPrompt() string {
	products := b.catalog.AllProducts()
	if len(products) > advisorPromptProductLimit {
		products = products[:advisorPromptProductLimit]
	}

	var sb strings.Builder
	sb.WriteString("You are the AI assistant of Zaman Bank, specializing in Islamic finance.\n")
	sb.WriteString("Your job is to help customers with financial planning, goals and the bank's products.\n\n")
	sb.WriteString("IMPORTANT: you have the bank's full product reference below. Always use it when recommending products.\n\n")
	writeProductSection(&sb, "AVAILABLE PRODUCTS", products)
	sb.WriteString("When answering:\n")
	sb.WriteString("1. Recommend ONLY products from the reference\n")
	sb.WriteString("2. Quote exact terms, fees and requirements\n")
	sb.WriteString("3. Explain the benefits of each product\n")
	sb.WriteString("4. Respect Islamic finance principles for halal products\n")
	sb.WriteString("5. Personalize recommendations from the customer's profile\n\n")
	sb.WriteString("Be friendly and professional.\n")
	return sb.String()
}

func (b *PromptBuilder) goalPlanningPrompt() string {
	products := append(b.catalog.ByType("Financing"), b.catalog.ByType("Deposit")...)

	var sb strings.Builder
	sb.WriteString("You help customers set and reach financial goals.\n")
	sb.WriteString("Analyze their income, expenses and ambitions, and propose realistic plans.\n\n")
	writeProductSection(&sb, "PRODUCTS FOR GOAL PLANNING", products)
	sb.WriteString("When planning goals:\n")
	sb.WriteString("1. Recommend concrete products from the reference\n")
	sb.WriteString("2. Compute realistic timelines and amounts\n")
	sb.WriteString("3. Respect Islamic finance principles\n")
	sb.WriteString("4. Propose a step-by-step plan\n")
	return sb.String()
}

func (b *PromptBuilder) expenseAnalysisPrompt() string {
	products := append(b.catalog.ByType("Deposit"), b.catalog.ByType("Investment")...)

	var sb strings.Builder
	sb.WriteString("You analyze customers' spending habits and advise on optimization.\n")
	sb.WriteString("Suggest ways to save and to grow income, respecting Islamic principles.\n\n")
	writeProductSection(&sb, "SAVINGS PRODUCTS", products)
	sb.WriteString("When analyzing:\n")
	sb.WriteString("1. Point out problem areas in spending\n")
	sb.WriteString("2. Recommend suitable deposits from the reference\n")
	sb.WriteString("3. Offer Islamic alternatives\n")
	sb.WriteString("4. Stay tactful and constructive\n")
	return sb.String()
}

func writeProductSection(sb *strings.Builder, title string, products []models.Product) {
	fmt.Fprintf(sb, "=== %s ===\n", title)
	for _, p := range products {
		writeProduct(sb, p)
	}
	sb.WriteString("\n")
}

// writeProduct serializes one product as a structured text block.
func writeProduct(sb *strings.Builder, p models.Product) {
	fmt.Fprintf(sb, "- %s (%s, %s)\n", p.Name, p.Category, p.Type)
	switch {
	case p.MinAmount != nil && p.MaxAmount != nil:
		fmt.Fprintf(sb, "  amount: %d - %d\n", *p.MinAmount, *p.MaxAmount)
	case p.MinAmount != nil:
		fmt.Fprintf(sb, "  amount: from %d, no upper limit\n", *p.MinAmount)
	}
	if p.Term != "" {
		fmt.Fprintf(sb, "  term: %s\n", p.Term)
	}
	if p.AgeRange != "" {
		fmt.Fprintf(sb, "  age: %s\n", p.AgeRange)
	}
	if p.Fee != "" {
		fmt.Fprintf(sb, "  fee: %s\n", p.Fee)
	}
	if p.ExpectedReturn != "" {
		fmt.Fprintf(sb, "  expected return: %s\n", p.ExpectedReturn)
	}
	if p.Islamic {
		sb.WriteString("  sharia-compliant: yes\n")
	}
	fmt.Fprintf(sb, "  %s\n", p.Description)
}
