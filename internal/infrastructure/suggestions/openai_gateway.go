package suggestions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/usecase/interfaces"
)

var ErrMissingSuggestionsAPIKey = errors.New("missing SUGGESTIONS_API_KEY")

const (
	defaultAPIURL  = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	requestTimeout = 20 * time.Second
)

// OpenAIGateway asks an OpenAI-compatible chat completions endpoint for
// estimator question ideas. The model is instructed to answer with a JSON
// array only; anything else fails the call and the use case falls back to
// its static list.
type OpenAIGateway struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
	mockMode   bool
}

var _ interfaces.ISuggestionGateway = (*OpenAIGateway)(nil)

func NewOpenAIGateway() (*OpenAIGateway, error) {
	if isSuggestionGatewayMockEnabled() {
		log.Printf("[suggestion][gateway] mock mode enabled")
		return &OpenAIGateway{mockMode: true}, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("SUGGESTIONS_API_KEY"))
	if apiKey == "" {
		log.Printf("[suggestion][gateway] missing SUGGESTIONS_API_KEY")
		return nil, ErrMissingSuggestionsAPIKey
	}

	return &OpenAIGateway{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiURL:     getenvDefault("SUGGESTIONS_API_URL", defaultAPIURL),
		apiKey:     apiKey,
		model:      getenvDefault("SUGGESTIONS_MODEL", defaultModel),
	}, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGateway) SuggestQuestions(ctx context.Context, trade string, count int) ([]entities.QuestionSuggestion, error) {
	if g != nil && g.mockMode {
		return mockSuggestions(trade, count), nil
	}
	if g == nil || g.httpClient == nil {
		return nil, errors.New("suggestion gateway not configured")
	}

	prompt := fmt.Sprintf(
		"Suggest %d questions a %s contractor should ask on a price estimate form. "+
			"Answer with a JSON array only, no prose. Each element: "+
			`{"text": string, "type": "single_choice"|"multiple_choice"|"number"|"text", "options": [string] (choice types only)}`,
		count, trade,
	)

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You help contractors design price estimate forms."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestions api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("suggestions api returned no choices")
	}

	return parseSuggestionList(parsed.Choices[0].Message.Content)
}

// parseSuggestionList tolerates code fences around the array; models add them
// despite the instruction.
func parseSuggestionList(content string) ([]entities.QuestionSuggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var out []entities.QuestionSuggestion
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("suggestions response not a JSON array: %w", err)
	}

	valid := out[:0]
	for _, s := range out {
		if strings.TrimSpace(s.Text) == "" || !s.Type.Valid() {
			continue
		}
		valid = append(valid, s)
	}
	return valid, nil
}

func mockSuggestions(trade string, count int) []entities.QuestionSuggestion {
	all := []entities.QuestionSuggestion{
		{Text: fmt.Sprintf("What kind of %s work do you need?", trade), Type: entities.QuestionTypeSingleChoice, Options: []string{"Repair", "Replacement", "New installation"}},
		{Text: "How large is the area?", Type: entities.QuestionTypeNumber},
		{Text: "When do you want the work done?", Type: entities.QuestionTypeSingleChoice, Options: []string{"As soon as possible", "Within three months", "Flexible"}},
		{Text: "Describe the current situation.", Type: entities.QuestionTypeText},
	}
	if count < len(all) {
		return all[:count]
	}
	return all
}

func isSuggestionGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SUGGESTION_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
