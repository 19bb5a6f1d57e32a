package genai

import (
	"context"
	"strings"
	"testing"
	"time"
)

type fakeProvider struct {
	name       string
	configured bool
	text       string
	err        error
	calls      int
}

func (p *fakeProvider) Name() string     { return p.name }
func (p *fakeProvider) Configured() bool { return p.configured }

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	return p.text, p.err
}

func newOrchestrator(providers ...Provider) *Orchestrator {
	return NewWithProviders(providers, time.Second)
}

func TestGenerateReturnsFirstSuccess(t *testing.T) {
	first := &fakeProvider{name: "a", configured: true, text: "文案A"}
	second := &fakeProvider{name: "b", configured: true, text: "文案B"}

	got := newOrchestrator(first, second).Generate(context.Background(), "prompt")

	if got != "文案A" {
		t.Fatalf("expected first provider text, got %q", got)
	}
	if second.calls != 0 {
		t.Fatalf("second provider should not be called, got %d calls", second.calls)
	}
}

func TestGenerateSkipsUnconfiguredProviders(t *testing.T) {
	skipped := &fakeProvider{name: "a", configured: false, text: "never"}
	active := &fakeProvider{name: "b", configured: true, text: "文案B"}

	got := newOrchestrator(skipped, active).Generate(context.Background(), "prompt")

	if got != "文案B" {
		t.Fatalf("expected configured provider text, got %q", got)
	}
	if skipped.calls != 0 {
		t.Fatalf("unconfigured provider must not be invoked, got %d calls", skipped.calls)
	}
}

func TestGenerateFallsThroughOnRetryableFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"transport error", context.DeadlineExceeded},
		{"server error", &ProviderError{Provider: "a", Status: 500}},
		{"not found", &ProviderError{Provider: "a", Status: 404}},
		{"rate limited", &ProviderError{Provider: "a", Status: 429}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			failing := &fakeProvider{name: "a", configured: true, err: tc.err}
			backup := &fakeProvider{name: "b", configured: true, text: "备选文案"}

			got := newOrchestrator(failing, backup).Generate(context.Background(), "prompt")

			if got != "备选文案" {
				t.Fatalf("expected fallback to next provider, got %q", got)
			}
		})
	}
}

func TestGenerateStopsOnNonRetryableFailure(t *testing.T) {
	for _, status := range []int{400, 401, 403} {
		failing := &fakeProvider{name: "a", configured: true, err: &ProviderError{Provider: "a", Status: status}}
		backup := &fakeProvider{name: "b", configured: true, text: "不应返回"}

		got := newOrchestrator(failing, backup).Generate(context.Background(), "prompt内容")

		if backup.calls != 0 {
			t.Fatalf("status %d: chain must stop before next provider", status)
		}
		if !strings.Contains(got, "prompt内容") {
			t.Fatalf("status %d: expected fallback template embedding prompt, got %q", status, got)
		}
	}
}

func TestGenerateTreatsEmptyTextAsFailure(t *testing.T) {
	empty := &fakeProvider{name: "a", configured: true, text: ""}
	backup := &fakeProvider{name: "b", configured: true, text: "有效文案"}

	got := newOrchestrator(empty, backup).Generate(context.Background(), "prompt")

	if got != "有效文案" {
		t.Fatalf("expected empty text to fall through, got %q", got)
	}
}

func TestGenerateFallbackWhenAllFail(t *testing.T) {
	a := &fakeProvider{name: "a", configured: true, err: &ProviderError{Provider: "a", Status: 503}}
	b := &fakeProvider{name: "b", configured: true, err: &ProviderError{Provider: "b", Status: 500}}

	got := newOrchestrator(a, b).Generate(context.Background(), "两室一厅 近地铁")

	if got == "" {
		t.Fatal("orchestrator must always return non-empty text")
	}
	if !strings.Contains(got, "两室一厅 近地铁") {
		t.Fatalf("fallback template must embed the prompt, got %q", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("each provider attempted at most once, got %d/%d", a.calls, b.calls)
	}
}

func TestGenerateFallbackWhenNoneConfigured(t *testing.T) {
	got := newOrchestrator().Generate(context.Background(), "毛坯房 采光好")

	if !strings.Contains(got, "毛坯房 采光好") {
		t.Fatalf("expected deterministic fallback with prompt, got %q", got)
	}
}

func TestRetryableBySubstitution(t *testing.T) {
	if retryableBySubstitution(&ProviderError{Status: 401}) {
		t.Fatal("401 must not be retryable by substitution")
	}
	if !retryableBySubstitution(&ProviderError{Status: 502}) {
		t.Fatal("502 must be retryable by substitution")
	}
	if !retryableBySubstitution(context.DeadlineExceeded) {
		t.Fatal("timeouts must be retryable by substitution")
	}
}
