package dto

import "time"

// GenerateListingDTO 生成文案请求
type GenerateListingDTO struct {
	PropertyID uint64 `json:"propertyId" binding:"required"`
	UserID     uint64 `json:"userId" binding:"required"`
}

// UpdateListingDTO 文案编辑请求
type UpdateListingDTO struct {
	Content string `json:"content" binding:"required"`
}

// ListingDTO 房源文案
type ListingDTO struct {
	ID         uint64    `json:"id"`
	PropertyID uint64    `json:"propertyId"`
	UserID     uint64    `json:"userId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
