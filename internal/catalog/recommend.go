package catalog

import (
	"strings"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

const (
	// affordabilityShare caps recommendable products at 30% of income.
	affordabilityShare = 0.3
	maxRecommendations = 5
	targetRuleLimit    = 3
	islamicRuleLimit   = 2
	riskRuleLimit      = 2
)

// RecommendationEngine scores catalog entries against a user profile.
type RecommendationEngine struct {
	catalog *Catalog
}

func NewRecommendationEngine(c *Catalog) *RecommendationEngine {
	return &RecommendationEngine{catalog: c}
}

// Recommend assembles up to 5 products by ordered rule application over the
// affordable subset of the catalog. Rule order decides which slots fill
// first once the cap is reached; duplicates keep their first occurrence.
// The result is deterministic for a given profile and catalog.
func (e *RecommendationEngine) Recommend(profile models.UserProfile) []models.Product {
	// Unpriced products have no floor to compare and are never recommended.
	ceiling := float64(profile.Income) * affordabilityShare
	var affordable []models.Product
	for _, p := range e.catalog.products {
		if p.MinAmount != nil && float64(*p.MinAmount) <= ceiling {
			affordable = append(affordable, p)
		}
	}

	var picks []models.Product

	if profile.Type == models.TargetRetail || profile.Type == "" {
		picks = appendMatching(picks, affordable, targetRuleLimit, func(p models.Product) bool {
			return p.Target == models.TargetRetail
		})
	}
	if profile.Type == models.TargetSME {
		picks = appendMatching(picks, affordable, targetRuleLimit, func(p models.Product) bool {
			return p.Target == models.TargetSME
		})
	}
	if profile.Preferences.Islamic {
		picks = appendMatching(picks, affordable, islamicRuleLimit, func(p models.Product) bool {
			return p.Islamic
		})
	}
	if profile.RiskTolerance == models.RiskConservative {
		picks = appendMatching(picks, affordable, riskRuleLimit, func(p models.Product) bool {
			return typeContains(p, "deposit") || typeContains(p, "investment")
		})
	}
	if profile.RiskTolerance == models.RiskAggressive {
		picks = appendMatching(picks, affordable, riskRuleLimit, func(p models.Product) bool {
			return typeContains(p, "financing")
		})
	}

	unique := dedupeByID(picks)
	if len(unique) > maxRecommendations {
		unique = unique[:maxRecommendations]
	}
	return unique
}

func appendMatching(dst, src []models.Product, limit int, match func(models.Product) bool) []models.Product {
	taken := 0
	for _, p := range src {
		if taken == limit {
			break
		}
		if match(p) {
			dst = append(dst, p)
			taken++
		}
	}
	return dst
}

func typeContains(p models.Product, substr string) bool {
	return strings.Contains(strings.ToLower(p.Type), substr)
}

func dedupeByID(products []models.Product) []models.Product {
	seen := make(map[string]bool, len(products))
	var out []models.Product
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
