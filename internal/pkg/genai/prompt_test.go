package genai

import (
	"Rentora/internal/model"
	"strings"
	"testing"
)

func TestBuildListingPromptIncludesAttributes(t *testing.T) {
	p := &model.Property{
		Title:             "市中心精装两居",
		Description:       "新装修，家电齐全",
		Address:           "朝阳区建国路88号",
		Rent:              6500,
		Bedrooms:          2,
		Bathrooms:         1.5,
		Amenities:         []string{"电梯", "停车位"},
		PetsAllowed:       true,
		UtilitiesIncluded: false,
	}

	prompt := BuildListingPrompt(p)

	for _, want := range []string{
		"市中心精装两居",
		"朝阳区建国路88号",
		"6500",
		"2室，1.5卫",
		"电梯、停车位",
		"允许宠物：是",
		"包含水电：否",
		"新装修，家电齐全",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildListingPromptMissingFields(t *testing.T) {
	prompt := BuildListingPrompt(&model.Property{Title: "仅有标题"})

	if !strings.Contains(prompt, "配套设施：无") {
		t.Fatalf("empty amenities should render as 无:\n%s", prompt)
	}
	if strings.Contains(prompt, "补充描述") {
		t.Fatalf("empty description should be omitted:\n%s", prompt)
	}
}

func TestBuildListingPromptNilProperty(t *testing.T) {
	if got := BuildListingPrompt(nil); got == "" {
		t.Fatal("nil property must still produce a prompt")
	}
}

func TestBuildListingPromptDeterministic(t *testing.T) {
	p := &model.Property{Title: "测试房源", Rent: 3000}
	if BuildListingPrompt(p) != BuildListingPrompt(p) {
		t.Fatal("prompt must be deterministic for identical input")
	}
}

func TestFallbackListingEmbedsPrompt(t *testing.T) {
	got := FallbackListing("三室两厅 南向")
	if !strings.Contains(got, "三室两厅 南向") {
		t.Fatalf("fallback must embed the prompt, got %q", got)
	}
	if got != FallbackListing("三室两厅 南向") {
		t.Fatal("fallback must be deterministic")
	}
}
