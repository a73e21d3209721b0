package vision

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/terraincognita07/kalori/internal/models"
	"go.uber.org/zap"
)

var (
	ErrAnalysisFailed = errors.New("food analysis failed")
	ErrNotConfigured  = errors.New("food analysis is not configured")
	ErrEmptyImage     = errors.New("image is required")
)

const (
	DefaultModel     = "gpt-4o"
	maxResponseToken = 600

	systemPrompt = "You are a nutrition expert. Analyze food images and provide accurate calorie and macronutrient information."
	userPrompt   = `Analyze this food image and provide:
1. Total calories (kcal)
2. Protein (grams)
3. Carbohydrates (grams)
4. Fat (grams)
5. Brief description of the food

Respond in this exact JSON format:
{
  "calories": <number>,
  "protein": <number>,
  "carbs": <number>,
  "fat": <number>,
  "description": "<text>"
}`
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Analyzer estimates meal macros from a photo through an OpenAI-compatible chat endpoint.
type Analyzer struct {
	client chatCompleter
	model  string
	logger *zap.Logger
}

func NewAnalyzer(cfg Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	analyzer := &Analyzer{model: model, logger: logger}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return analyzer
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	analyzer.client = openai.NewClientWithConfig(clientConfig)
	return analyzer
}

func (analyzer *Analyzer) Configured() bool {
	return analyzer.client != nil
}

func (analyzer *Analyzer) Analyze(ctx context.Context, imageBase64 string) (models.FoodAnalysis, error) {
	if analyzer.client == nil {
		return models.FoodAnalysis{}, ErrNotConfigured
	}
	imageBase64 = strings.TrimSpace(imageBase64)
	if imageBase64 == "" {
		return models.FoodAnalysis{}, ErrEmptyImage
	}

	response, err := analyzer.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     analyzer.model,
		MaxTokens: maxResponseToken,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: userPrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
						URL:    imageDataURL(imageBase64),
						Detail: openai.ImageURLDetailAuto,
					}},
				},
			},
		},
	})
	if err != nil {
		analyzer.logger.Error("vision request failed", zap.String("model", analyzer.model), zap.Error(err))
		return models.FoodAnalysis{}, fmt.Errorf("%w: request: %v", ErrAnalysisFailed, err)
	}
	if len(response.Choices) == 0 {
		analyzer.logger.Error("vision response has no choices", zap.String("model", analyzer.model))
		return models.FoodAnalysis{}, fmt.Errorf("%w: empty response", ErrAnalysisFailed)
	}

	analysis, err := ParseAnalysis(response.Choices[0].Message.Content)
	if err != nil {
		analyzer.logger.Warn("vision reply not parsable", zap.String("model", analyzer.model), zap.Error(err))
		return models.FoodAnalysis{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	return analysis, nil
}

func imageDataURL(imageBase64 string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}
