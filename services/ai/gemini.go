package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor asks a Gemini model for budget tips.
type GeminiAdvisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiAdvisor(ctx context.Context, apiKey, modelName string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(120)
	return &GeminiAdvisor{client: client, model: model}, nil
}

func budgetPrompt(budget float64, services []string) string {
	list := "no specific services yet"
	if len(services) > 0 {
		list = strings.Join(services, ", ")
	}
	return fmt.Sprintf(
		"You help people plan events. In one short sentence, give one practical tip "+
			"for an event budget of %.2f covering: %s. Reply with the tip only.",
		budget, list)
}

func (g *GeminiAdvisor) BudgetTip(ctx context.Context, budget float64, services []string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(budgetPrompt(budget, services)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func (g *GeminiAdvisor) Close() error {
	return g.client.Close()
}
