package genai

import (
	"Rentora/internal/api/config"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestProvider 走裸 JSON 补全接口的渠道，响应结构各家不一，统一走防御式解析
type RestProvider struct {
	name   string
	url    string
	model  string
	apiKey string
	client *resty.Client
}

func NewRestProvider(cfg config.ProviderConfig) *RestProvider {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &RestProvider{
		name:   cfg.Name,
		url:    cfg.URL,
		model:  cfg.Model,
		apiKey: cfg.ApiKey,
		client: client,
	}
}

func (p *RestProvider) Name() string {
	return p.name
}

func (p *RestProvider) Configured() bool {
	return p.url != "" && p.apiKey != ""
}

func (p *RestProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetBody(map[string]interface{}{
			"model":  p.model,
			"prompt": prompt,
		}).
		Post(p.url)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() >= 300 {
		return "", &ProviderError{Provider: p.name, Status: resp.StatusCode()}
	}

	text, _ := ExtractText(resp.Body())
	return text, nil
}
