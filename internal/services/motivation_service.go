package services

import (
	"fmt"
	"math/rand"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

var motivationTips = []string{
	"Small regular contributions beat occasional large ones.",
	"Every tenge saved today works for you tomorrow.",
	"Discipline, not income, is what builds savings.",
	"A goal with a deadline is a plan; without one it is a wish.",
	"Review your progress weekly to stay on track.",
}

// MotivationService produces progress-banded encouragement messages.
// The random source is injected so message selection is seedable in tests.
type MotivationService struct {
	rng *rand.Rand
}

func NewMotivationService(rng *rand.Rand) *MotivationService {
	return &MotivationService{rng: rng}
}

// Message returns an encouragement line for the given progress fraction
// (0..1) toward the goal.
func (s *MotivationService) Message(progress float64, goal models.Goal) string {
	tip := motivationTips[s.rng.Intn(len(motivationTips))]
	switch {
	case progress > 0.5:
		return fmt.Sprintf("Great work! You are %.1f%% of the way to %q. %s", progress*100, goal.Name, tip)
	case progress > 0.2:
		return fmt.Sprintf("Good start! You are %.1f%% of the way to %q. Keep it up!", progress*100, goal.Name)
	default:
		return fmt.Sprintf("Every step counts! You are just starting the journey to %q. %s", goal.Name, tip)
	}
}
