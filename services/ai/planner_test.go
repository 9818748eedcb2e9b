package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventra/database/repository/memstore"
	"eventra/models"
	"eventra/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type stubAdvisor struct {
	tip string
	err error
}

func (s stubAdvisor) BudgetTip(context.Context, float64, []string) (string, error) {
	return s.tip, s.err
}

func TestSuggestServices(t *testing.T) {
	svc := NewLocalPlannerService(nil, nil)

	tests := []struct {
		name string
		req  models.SuggestServicesRequest
		want []string
	}{
		{"base", models.SuggestServicesRequest{EventType: "Corporate", GuestCount: 50}, []string{"Photography", "Catering"}},
		{"wedding", models.SuggestServicesRequest{EventType: "Wedding", GuestCount: 80}, []string{"Photography", "Catering", "Decoration", "Makeup", "Entertainment"}},
		{"birthday", models.SuggestServicesRequest{EventType: "Birthday"}, []string{"Photography", "Catering", "Cake", "Decoration"}},
		{"large wedding", models.SuggestServicesRequest{EventType: "Wedding", GuestCount: 150}, []string{"Photography", "Catering", "Decoration", "Makeup", "Entertainment", "Security", "Vehicle Rental"}},
		{"exactly 100 guests", models.SuggestServicesRequest{EventType: "Party", GuestCount: 100}, []string{"Photography", "Catering"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.SuggestServices(tt.req))
		})
	}
}

func TestOptimizeBudget(t *testing.T) {
	ctx := context.Background()
	plain := NewLocalPlannerService(nil, nil)

	tight := plain.OptimizeBudget(ctx, models.OptimizeBudgetRequest{Budget: 4999})
	assert.Equal(t, []string{"Budget is tight. Consider DIY decorations."}, tight.Feedback)
	assert.NotNil(t, tight.AlternativeOptions)
	assert.Empty(t, tight.AlternativeOptions)

	healthy := plain.OptimizeBudget(ctx, models.OptimizeBudgetRequest{Budget: 5000})
	assert.Equal(t, []string{"Budget looks healthy. You can afford premium catering."}, healthy.Feedback)

	withTip := NewLocalPlannerService(nil, stubAdvisor{tip: " Rent decor instead of buying. "})
	got := withTip.OptimizeBudget(ctx, models.OptimizeBudgetRequest{Budget: 100})
	assert.Equal(t, []string{"Budget is tight. Consider DIY decorations.", "Rent decor instead of buying."}, got.Feedback)

	failing := NewLocalPlannerService(nil, stubAdvisor{err: errors.New("quota")})
	got = failing.OptimizeBudget(ctx, models.OptimizeBudgetRequest{Budget: 100})
	assert.Len(t, got.Feedback, 1)
}

func TestGenerateTimeline(t *testing.T) {
	items := NewLocalPlannerService(nil, nil).GenerateTimeline(models.TimelineRequest{Date: "2025-06-14", EventType: "Wedding"})
	require.Len(t, items, 4)
	assert.Equal(t, models.TimelineItem{Date: "1 month before", Task: "Book venue and core services"}, items[0])
	assert.Equal(t, models.TimelineItem{Date: "1 day before", Task: "Final check"}, items[3])
}

func TestMatchProvidersCapsAtFive(t *testing.T) {
	store := memstore.New()
	for i := 0; i < 7; i++ {
		id := string(rune('a' + i))
		store.Users[id] = &models.User{ID: id, Name: "Provider " + id, Role: models.RoleProvider}
		_, _, err := store.ProviderRepo().Upsert(context.Background(), models.ProviderProfileUpdate{User: id, Category: "Catering"})
		require.NoError(t, err)
	}
	svc := NewLocalPlannerService(store.ProviderRepo(), nil)

	matches, err := svc.MatchProviders(context.Background(), models.MatchProvidersRequest{EventType: "Wedding"})
	require.NoError(t, err)
	assert.Len(t, matches, 5)
	for _, m := range matches {
		assert.NotNil(t, m.UserInfo)
	}
}

func TestTipKeyAndPrompt(t *testing.T) {
	a := tipKey(5200, []string{"Catering", " photography"})
	b := tipKey(5900, []string{"Photography", "catering"})
	c := tipKey(7100, []string{"Photography", "catering"})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	assert.Contains(t, budgetPrompt(1500, nil), "no specific services yet")
	assert.Contains(t, budgetPrompt(1500, []string{"Cake"}), "1500.00 covering: Cake")

	next := stubAdvisor{tip: "x"}
	assert.Equal(t, Advisor(next), NewCachedAdvisor(next, nil, time.Hour))
}
