package genai

import (
	"context"
	"errors"
	"fmt"
)

const (
	KindOpenAI = "openai"
	KindRest   = "rest"
)

// Provider 单个文案生成渠道的能力抽象，便于注入假实现做测试
type Provider interface {
	Name() string
	// Configured 未配置凭据的渠道直接跳过，不计入降级尝试
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderError 渠道返回的非 2xx 状态
type ProviderError struct {
	Provider string
	Status   int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s returned status %d", e.Provider, e.Status)
}

// retryableBySubstitution 判断失败后是否值得换下一个渠道重试。
// 400/401/403 属于配置问题，换渠道解决不了，直接终止降级链；
// 超时、404、429、5xx 以及传输层错误换一家可能成功。
func retryableBySubstitution(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		switch pe.Status {
		case 400, 401, 403:
			return false
		}
	}
	return true
}
