package genai

import (
	"Rentora/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"golang.org/x/sync/semaphore"
)

const defaultTimeout = 15 * time.Second

// Orchestrator 按配置顺序依次尝试各生成渠道，全部失败时退回确定性模板。
// 无内部状态，可被并发调用。
type Orchestrator struct {
	providers []Provider
	timeout   time.Duration
	sem       *semaphore.Weighted
}

// New 根据配置构建渠道列表，Providers 顺序即降级顺序
func New(cfg config.GenAIConfig) *Orchestrator {
	providers := make([]Provider, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		switch pc.Kind {
		case KindRest:
			providers = append(providers, NewRestProvider(pc))
		default:
			providers = append(providers, NewOpenAIProvider(pc))
		}
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var sem *semaphore.Weighted
	if cfg.MaxConcurrent > 0 {
		sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}

	return &Orchestrator{providers: providers, timeout: timeout, sem: sem}
}

// NewWithProviders 直接注入渠道实例
func NewWithProviders(providers []Provider, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Orchestrator{providers: providers, timeout: timeout}
}

// Generate 返回第一个可用渠道的文案，永不失败。
// 每个已配置渠道最多尝试一次，耗尽后返回内嵌原始 prompt 的兜底模板。
func (o *Orchestrator) Generate(ctx context.Context, prompt string) string {
	for _, p := range o.providers {
		if !p.Configured() {
			continue
		}

		text, err := o.attempt(ctx, p, prompt)
		if err != nil {
			log.WarnContext(ctx, "文案生成渠道调用失败", "provider", p.Name(), "err", err)
			if !retryableBySubstitution(err) {
				break
			}
			continue
		}
		if text == "" {
			// 返回体里抽不出有效文本，视为失败继续降级
			log.WarnContext(ctx, "文案生成渠道返回空文本", "provider", p.Name())
			continue
		}

		log.InfoContext(ctx, "文案生成成功", "provider", p.Name())
		return text
	}

	log.InfoContext(ctx, "所有文案生成渠道不可用，使用兜底模板")
	return FallbackListing(prompt)
}

// attempt 单渠道调用，超时只影响当前渠道
func (o *Orchestrator) attempt(ctx context.Context, p Provider, prompt string) (string, error) {
	if o.sem != nil {
		if err := o.sem.Acquire(ctx, 1); err != nil {
			return "", err
		}
		defer o.sem.Release(1)
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	return p.Generate(callCtx, prompt)
}
