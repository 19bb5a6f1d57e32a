package genai

import (
	"strings"

	"github.com/goccy/go-json"
)

// textKeys 各家补全接口常见的文本字段名，按出现概率排序
var textKeys = []string{"text", "content", "completion", "output", "generated_text", "message", "data"}

// ExtractText 从渠道响应体中抽取生成文本。
// 支持三类形态：对象数组、裸字符串、带字段的对象（含 OpenAI 风格的
// choices[0].message.content 嵌套）。抽不出非空文本时返回 false。
func ExtractText(body []byte) (string, bool) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		// 非 JSON 响应按纯文本处理
		text := CleanText(string(body))
		return text, text != ""
	}

	text := CleanText(extract(raw))
	return text, text != ""
}

func extract(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []interface{}:
		for _, item := range val {
			if s := extract(item); s != "" {
				return s
			}
		}
	case map[string]interface{}:
		for _, key := range textKeys {
			if inner, ok := val[key]; ok {
				if s := extract(inner); s != "" {
					return s
				}
			}
		}
		if choices, ok := val["choices"]; ok {
			return extract(choices)
		}
	}
	return ""
}

// CleanText 去掉模型常见的 markdown 代码围栏与首尾空白
func CleanText(s string) string {
	cleaned := strings.TrimSpace(s)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}
