package models

// SuggestServicesRequest is the payload for POST /api/ai/suggest-services.
type SuggestServicesRequest struct {
	EventType  string  `json:"eventType"`
	Budget     float64 `json:"budget"`
	GuestCount int     `json:"guestCount"`
}

// MatchProvidersRequest is the payload for POST /api/ai/match-providers.
type MatchProvidersRequest struct {
	EventType string  `json:"eventType"`
	Date      string  `json:"date"`
	Budget    float64 `json:"budget"`
}

// OptimizeBudgetRequest is the payload for POST /api/ai/optimize-budget.
type OptimizeBudgetRequest struct {
	Budget   float64  `json:"budget"`
	Services []string `json:"services"`
}

// BudgetFeedback is the response of POST /api/ai/optimize-budget.
type BudgetFeedback struct {
	Feedback           []string `json:"feedback"`
	AlternativeOptions []string `json:"alternativeOptions"`
}

// TimelineRequest is the payload for POST /api/ai/timeline.
type TimelineRequest struct {
	Date      string `json:"date"`
	EventType string `json:"eventType"`
}

// TimelineItem is one planning milestone.
type TimelineItem struct {
	Date string `json:"date"`
	Task string `json:"task"`
}
