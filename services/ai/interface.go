package ai

import (
	"context"

	providerRepo "eventra/database/repository/provider"
	"eventra/models"
)

// PlannerService answers the planning assistant endpoints.
type PlannerService interface {
	SuggestServices(req models.SuggestServicesRequest) []string
	MatchProviders(ctx context.Context, req models.MatchProvidersRequest) ([]models.ProviderProfileView, error)
	OptimizeBudget(ctx context.Context, req models.OptimizeBudgetRequest) models.BudgetFeedback
	GenerateTimeline(req models.TimelineRequest) []models.TimelineItem
}

// Advisor produces one free-form planning tip.
type Advisor interface {
	BudgetTip(ctx context.Context, budget float64, services []string) (string, error)
}

// LocalPlannerService is rule based; the optional advisor only adds a tip.
type LocalPlannerService struct {
	providers providerRepo.ProviderRepository
	advisor   Advisor
}

func NewLocalPlannerService(providers providerRepo.ProviderRepository, advisor Advisor) *LocalPlannerService {
	return &LocalPlannerService{providers: providers, advisor: advisor}
}
