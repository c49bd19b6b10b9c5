// Package llm implements the AI title suggester on top of an
// OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/domain"
)

// Suggester asks an LLM for movie titles fitting a theme
type Suggester struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewSuggester creates a new LLM suggester
func NewSuggester(cfg config.LLMConfig) *Suggester {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Suggester{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for title suggestions
const defaultSystemPrompt = `You are a film curator building themed movie collections.
Given a theme description, respond with a plain list of movie titles that fit it.

Rules:
- One movie per line, formatted exactly as: Title (Year)
- Example: The Shining (1980)
- No commentary, no numbering explanations, no markdown headers
- Prefer well-known, well-regarded films over obscure ones
- Never invent movies that do not exist`

// Suggest asks the LLM for up to max titles matching the theme prompt.
// The returned list preserves the model's ordering. Lines that don't parse
// as "Title (Year)" are dropped rather than failing the call.
func (s *Suggester) Suggest(ctx context.Context, themePrompt string, max int) ([]domain.Suggestion, error) {
	if max <= 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf("Theme: %s\n\nSuggest up to %d movies.", themePrompt, max)

	chatReq := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	var content string
	retrier := repeater.NewBackoff(2, 500*time.Millisecond) // one retry on transient failure
	err := retrier.Do(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()

		resp, err := s.client.CreateChatCompletion(callCtx, chatReq)
		if err != nil {
			lgr.Printf("[WARN] llm request failed: %v", err)
			return fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no response from llm")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return nil, err
	}

	suggestions := parseSuggestions(content, max)
	lgr.Printf("[DEBUG] llm returned %d usable suggestions", len(suggestions))
	return suggestions, nil
}

// titleLineRe matches "Title (Year)" with optional list numbering or bullets
var titleLineRe = regexp.MustCompile(`^(?:[-*•]\s*|\d+[.)]\s*)?(.+?)\s*\((\d{4})\)\s*$`)

// parseSuggestions extracts suggestions from the model output, one per
// line, skipping anything that isn't a "Title (Year)" line. Duplicate
// titles keep their first position.
func parseSuggestions(content string, max int) []domain.Suggestion {
	var result []domain.Suggestion
	seen := map[string]struct{}{}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := titleLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.Trim(m[1], `"'`)
		if title == "" {
			continue
		}
		year, _ := strconv.Atoi(m[2])

		dedupKey := strings.ToLower(title)
		if _, ok := seen[dedupKey]; ok {
			continue
		}
		seen[dedupKey] = struct{}{}

		result = append(result, domain.Suggestion{Title: title, Year: year})
		if len(result) >= max {
			break
		}
	}
	return result
}
