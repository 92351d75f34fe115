// Package inference wraps the external chat-model scoring service used as
// one signal source for turnover-risk prediction.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/config"
)

// Result is the JSON object the scoring model is instructed to produce.
type Result struct {
	RiskScore float64 `json:"riskScore"`
	Reasoning string  `json:"reasoning"`
}

// NewChatModel builds the chat model from configuration. Any
// OpenAI-compatible endpoint works; the base URL selects the provider.
func NewChatModel(ctx context.Context, cfg config.InferenceConfig) (model.BaseChatModel, error) {
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		Timeout:     cfg.Timeout,
	})
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseResult extracts the first JSON object from free-form model output.
// The model is asked for bare JSON but routinely wraps it in prose or
// markdown fences, so the object is located by pattern match rather than
// decoded directly.
func ParseResult(content string) (Result, error) {
	raw := jsonObjectPattern.FindString(content)
	if raw == "" {
		return Result{}, fmt.Errorf("no JSON object in model output")
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return Result{}, fmt.Errorf("malformed JSON in model output: %w", err)
	}

	return result, nil
}
