package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

func newEngine() *RecommendationEngine {
	return NewRecommendationEngine(New())
}

func TestRecommend_RetailDefault(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{Income: 1000000}

	// affordable = floor at or below 300000; first three retail products
	got := productIDs(e.Recommend(profile))
	assert.Equal(t, []string{"bnpl_retail", "islamic_financing_retail", "kopilka"}, got)
}

func TestRecommend_SMEProfile(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{Income: 1000000, Type: models.TargetSME}

	got := productIDs(e.Recommend(profile))
	assert.Equal(t, []string{"business_card_overdraft", "islamic_financing_sme_unsecured", "islamic_financing_sme_secured"}, got)
}

func TestRecommend_IslamicPreference(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{
		Income:      1000000,
		Type:        models.TargetSME,
		Preferences: models.Preferences{Islamic: true},
	}

	got := productIDs(e.Recommend(profile))
	// the islamic rule scans the whole affordable catalog, so its two picks
	// are the first islamic products in catalog order and extend the SME slots
	assert.Equal(t, []string{
		"business_card_overdraft",
		"islamic_financing_sme_unsecured",
		"islamic_financing_sme_secured",
		"islamic_financing_retail",
		"wakala",
	}, got)
}

func TestRecommend_ConservativeAddsDepositsAndInvestments(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{Income: 1000000, RiskTolerance: models.RiskConservative}

	got := productIDs(e.Recommend(profile))
	assert.Equal(t, []string{"bnpl_retail", "islamic_financing_retail", "kopilka", "wakala"}, got)
}

func TestRecommend_AggressiveAddsFinancing(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{Income: 1000000, RiskTolerance: models.RiskAggressive}

	got := productIDs(e.Recommend(profile))
	// financing picks duplicate the retail slots, so only the SME
	// financing products extend the list; capped at 5
	require.LessOrEqual(t, len(got), 5)
	assert.Equal(t, []string{"bnpl_retail", "islamic_financing_retail", "kopilka"}, got[:3])
}

func TestRecommend_RuleOrderAndDedupe(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{
		Income:        1000000,
		Preferences:   models.Preferences{Islamic: true},
		RiskTolerance: models.RiskConservative,
	}

	got := productIDs(e.Recommend(profile))
	// islamic picks islamic_financing_retail (duplicate) then wakala;
	// conservative picks kopilka and wakala, both already taken
	assert.Equal(t, []string{"bnpl_retail", "islamic_financing_retail", "kopilka", "wakala"}, got)
}

func TestRecommend_CapAcrossRules(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{
		Income:        1000000,
		Type:          models.TargetSME,
		Preferences:   models.Preferences{Islamic: true},
		RiskTolerance: models.RiskConservative,
	}

	got := productIDs(e.Recommend(profile))
	// six distinct picks across the rules; kopilka from the conservative
	// rule falls past the cap
	assert.Equal(t, []string{
		"business_card_overdraft",
		"islamic_financing_sme_unsecured",
		"islamic_financing_sme_secured",
		"islamic_financing_retail",
		"wakala",
	}, got)
}

func TestRecommend_Deterministic(t *testing.T) {
	e := newEngine()
	profile := models.UserProfile{
		Income:        800000,
		Type:          models.TargetRetail,
		Preferences:   models.Preferences{Islamic: true},
		RiskTolerance: models.RiskAggressive,
	}

	first := e.Recommend(profile)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Recommend(profile))
	}
}

// Over random profiles: at most 5 results, no duplicate ids, and nothing
// the profile cannot afford at 30% of income.
func TestRecommend_Properties(t *testing.T) {
	e := newEngine()
	rng := rand.New(rand.NewSource(7))
	types := []string{"", models.TargetRetail, models.TargetSME}
	risks := []string{"", models.RiskConservative, models.RiskModerate, models.RiskAggressive}

	for i := 0; i < 500; i++ {
		profile := models.UserProfile{
			Income:        rng.Intn(20000000),
			Type:          types[rng.Intn(len(types))],
			RiskTolerance: risks[rng.Intn(len(risks))],
			Preferences:   models.Preferences{Islamic: rng.Intn(2) == 0},
		}

		got := e.Recommend(profile)
		require.LessOrEqual(t, len(got), 5)

		seen := map[string]bool{}
		for _, p := range got {
			assert.False(t, seen[p.ID], "duplicate id %q", p.ID)
			seen[p.ID] = true
			require.NotNil(t, p.MinAmount, "unpriced product %q recommended", p.ID)
			assert.LessOrEqual(t, float64(*p.MinAmount), float64(profile.Income)*0.3)
		}
	}
}

func TestRecommend_ZeroIncome(t *testing.T) {
	e := newEngine()

	// no product floor fits a zero budget, and unpriced services are not
	// recommendable, so both targets come back empty
	assert.Empty(t, e.Recommend(models.UserProfile{}))
	assert.Empty(t, e.Recommend(models.UserProfile{Type: models.TargetSME}))
}
