package ai

import (
	"context"
	"strings"

	"eventra/models"
	"eventra/utils"

	"go.uber.org/zap"
)

const (
	matchLimit       = 5
	tightBudgetBelow = 5000
	largeGuestCount  = 100
)

func (s *LocalPlannerService) SuggestServices(req models.SuggestServicesRequest) []string {
	suggestions := []string{"Photography", "Catering"}

	switch strings.ToLower(strings.TrimSpace(req.EventType)) {
	case "wedding":
		suggestions = append(suggestions, "Decoration", "Makeup", "Entertainment")
	case "birthday":
		suggestions = append(suggestions, "Cake", "Decoration")
	}
	if req.GuestCount > largeGuestCount {
		suggestions = append(suggestions, "Security", "Vehicle Rental")
	}
	return suggestions
}

// MatchProviders returns up to five random provider profiles.
func (s *LocalPlannerService) MatchProviders(ctx context.Context, _ models.MatchProvidersRequest) ([]models.ProviderProfileView, error) {
	return s.providers.Sample(ctx, matchLimit)
}

func (s *LocalPlannerService) OptimizeBudget(ctx context.Context, req models.OptimizeBudgetRequest) models.BudgetFeedback {
	feedback := models.BudgetFeedback{AlternativeOptions: []string{}}
	if req.Budget < tightBudgetBelow {
		feedback.Feedback = []string{"Budget is tight. Consider DIY decorations."}
	} else {
		feedback.Feedback = []string{"Budget looks healthy. You can afford premium catering."}
	}

	if s.advisor != nil {
		tip, err := s.advisor.BudgetTip(ctx, req.Budget, req.Services)
		if err != nil {
			utils.GetLogger().Warn("budget advisor failed", zap.Error(err))
		} else if tip = strings.TrimSpace(tip); tip != "" {
			feedback.Feedback = append(feedback.Feedback, tip)
		}
	}
	return feedback
}

func (s *LocalPlannerService) GenerateTimeline(_ models.TimelineRequest) []models.TimelineItem {
	return []models.TimelineItem{
		{Date: "1 month before", Task: "Book venue and core services"},
		{Date: "2 weeks before", Task: "Finalize guest list"},
		{Date: "1 week before", Task: "Confirm all vendors"},
		{Date: "1 day before", Task: "Final check"},
	}
}
