package genai

import (
	"Rentora/internal/model"
	"fmt"
	"strings"
)

// BuildListingPrompt 将房产属性折叠成一条生成请求。
// 纯函数，缺失字段用空值兜底，不产生错误。
func BuildListingPrompt(p *model.Property) string {
	if p == nil {
		p = &model.Property{}
	}

	var b strings.Builder
	b.WriteString("请为以下出租房源撰写一段有吸引力的营销文案：\n")
	b.WriteString(fmt.Sprintf("房源标题：%s\n", p.Title))
	b.WriteString(fmt.Sprintf("户型：%d室，%.1f卫\n", p.Bedrooms, p.Bathrooms))
	b.WriteString(fmt.Sprintf("地址：%s\n", p.Address))
	b.WriteString(fmt.Sprintf("月租金：%.0f元\n", p.Rent))

	amenities := "无"
	if len(p.Amenities) > 0 {
		amenities = strings.Join(p.Amenities, "、")
	}
	b.WriteString(fmt.Sprintf("配套设施：%s\n", amenities))
	b.WriteString(fmt.Sprintf("允许宠物：%s\n", yesNo(p.PetsAllowed)))
	b.WriteString(fmt.Sprintf("包含水电：%s\n", yesNo(p.UtilitiesIncluded)))

	if p.Description != "" {
		b.WriteString(fmt.Sprintf("补充描述：%s\n", p.Description))
	}
	b.WriteString("要求：150字以内，突出房源亮点，语气专业亲切。")

	return b.String()
}

// FallbackListing 所有渠道不可用时的确定性兜底模板，内嵌原始请求内容，
// 保证调用方始终能拿到非空文案
func FallbackListing(prompt string) string {
	var b strings.Builder
	b.WriteString("【优质房源推荐】\n")
	b.WriteString(prompt)
	b.WriteString("\n房源信息以实际为准，欢迎预约看房，先到先得。")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "是"
	}
	return "否"
}
