package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/confessly/confessly-backend/internal/config"
	"github.com/confessly/confessly-backend/internal/dto"
)

var (
	ErrAdviceNotConfigured = errors.New("advice generator not configured")
	ErrAdviceRateLimited   = errors.New("advice generator is busy, try again later")
	ErrAdviceUpstream      = errors.New("advice generator unavailable")
)

const adviceSystemPrompt = "You are a helpful, empathetic counselor who provides supportive advice. Always respond with valid JSON format."

const advicePromptTemplate = `You are a compassionate and professional counselor providing advice for someone's anonymous confession.

Title: %q
Confession: %q

Please provide:
1. Thoughtful, empathetic advice (2-3 paragraphs)
2. Categorize the main theme (Love, Career, School, Family, Friendship, Health, Money, Personal, Other)
3. Suggest 2-3 helpful resources or next steps

Keep your response supportive, non-judgmental, and constructive. If the confession involves serious issues like self-harm or illegal activities, recommend professional help.

Format your response as JSON with this structure:
{"advice": "Your thoughtful advice here...", "category": "The main category", "resources": ["Resource 1", "Resource 2", "Resource 3"]}`

var fallbackResources = []string{
	"Consider talking to a trusted friend or family member",
	"Professional counseling services",
	"Online support communities",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AdviceService delegates to an OpenAI-compatible chat completions endpoint.
// The upstream is opaque: its text is passed through, and its failures map to
// errors distinct from internal ones.
type AdviceService struct {
	cfg    *config.Config
	client *http.Client
}

func NewAdviceService(cfg *config.Config) *AdviceService {
	timeout := cfg.AITimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &AdviceService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Generate returns advice for a confession's title and body.
func (s *AdviceService) Generate(title, body string) (*dto.AdviceResponse, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, errors.New("confession content and title are required")
	}
	if s.cfg.OpenAIAPIKey == "" {
		return nil, ErrAdviceNotConfigured
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: s.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: adviceSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(advicePromptTemplate, title, body)},
		},
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.OpenAIAPIURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdviceUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdviceUpstream, err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrAdviceRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrAdviceUpstream, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdviceUpstream, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrAdviceUpstream)
	}

	return parseAdvice(chat.Choices[0].Message.Content), nil
}

// parseAdvice decodes the model's JSON answer; when the model didn't honor
// the format, the raw text becomes the advice with default resources.
func parseAdvice(content string) *dto.AdviceResponse {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var advice dto.AdviceResponse
	if err := json.Unmarshal([]byte(cleaned), &advice); err == nil && advice.Advice != "" {
		if advice.Category == "" {
			advice.Category = "Personal"
		}
		return &advice
	}

	return &dto.AdviceResponse{
		Advice:    content,
		Category:  "Personal",
		Resources: fallbackResources,
	}
}
