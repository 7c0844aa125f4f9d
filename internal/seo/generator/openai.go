package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"metadata-workers/internal/common/config"
	apperrors "metadata-workers/internal/common/errors"
	"metadata-workers/internal/models"
)

const systemPrompt = `You are an SEO copywriter. Respond with a single JSON object and nothing else:
{"titles": [...], "descriptions": [...], "socialCopy": [...]}`

// OpenAIGenerator asks an external chat model for the metadata instead of
// sampling templates. Responses must be the JSON object described in the
// system prompt; anything else is an LLM_RESPONSE_INVALID error so the
// caller can fall back.
type OpenAIGenerator struct {
	model            string
	timeout          time.Duration
	requestOpts      []option.RequestOption
	titleCount       int
	descriptionCount int
	socialCount      int
}

func NewOpenAIGenerator(cfg config.GenAIConfig, titleCount, descriptionCount, socialCount int) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("genai api key missing")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIGenerator{
		model:            cfg.Model,
		timeout:          time.Duration(cfg.Timeout) * time.Millisecond,
		requestOpts:      opts,
		titleCount:       titleCount,
		descriptionCount: descriptionCount,
		socialCount:      socialCount,
	}, nil
}

// modelResponse is the JSON contract the prompt demands from the model.
type modelResponse struct {
	Titles       []string `json:"titles"`
	Descriptions []string `json:"descriptions"`
	SocialCopy   []string `json:"socialCopy"`
}

func (g *OpenAIGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GeneratedCopy, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	client := openai.NewClient(g.requestOpts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(g.buildPrompt(req)),
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apperrors.NewLLMTimeoutError()
		}
		return nil, apperrors.NewGenerationFailedError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.NewLLMResponseInvalidError(errors.New("empty choices"))
	}

	parsed, err := parseModelResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, apperrors.NewLLMResponseInvalidError(err)
	}

	return &models.GeneratedCopy{
		Titles:              clamp(parsed.Titles, g.titleCount),
		Descriptions:        clamp(parsed.Descriptions, g.descriptionCount),
		SocialCopy:          clamp(parsed.SocialCopy, g.socialCount),
		DetectedContentType: req.ContentType,
	}, nil
}

func (g *OpenAIGenerator) buildPrompt(req models.GenerationRequest) string {
	audience := req.TargetAudience
	if audience == "" {
		audience = "professionals"
	}
	return fmt.Sprintf(
		"Write %d SEO titles, %d meta descriptions and %d social media posts for the following %s content. Target audience: %s. Tone: %s.\n\nContent:\n%s",
		g.titleCount, g.descriptionCount, g.socialCount,
		req.ContentType, audience, req.Tone, req.Content,
	)
}

// parseModelResponse tolerates markdown code fences around the JSON body
// but nothing else.
func parseModelResponse(content string) (*modelResponse, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var parsed modelResponse
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}
	if len(parsed.Titles) == 0 || len(parsed.Descriptions) == 0 || len(parsed.SocialCopy) == 0 {
		return nil, errors.New("model response missing titles, descriptions or socialCopy")
	}
	return &parsed, nil
}

func clamp(list []string, limit int) []string {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
