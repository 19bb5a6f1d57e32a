package genai

import (
	"Rentora/internal/api/config"
	"context"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const listingSystemPrompt = "你是一名资深的房产营销文案编辑。根据用户提供的房源信息撰写文案，直接输出文案正文，不要任何解释或前缀。"

// OpenAIProvider 走 OpenAI 兼容协议的渠道
type OpenAIProvider struct {
	name        string
	model       string
	temperature float64
	client      llms.Model
}

func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	p := &OpenAIProvider{
		name:        cfg.Name,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
	if cfg.ApiKey == "" {
		return p
	}

	client, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("文案生成渠道初始化失败", "provider", cfg.Name, "err", err)
		return p
	}

	p.client = client
	return p
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Configured() bool {
	return p.client != nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(listingSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	resp, err := p.client.GenerateContent(ctx, messages,
		llms.WithModel(p.model),
		llms.WithTemperature(p.temperature),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return CleanText(resp.Choices[0].Content), nil
}
