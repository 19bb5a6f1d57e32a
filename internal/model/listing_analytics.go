package model

import (
	"time"
)

// ListingAnalytics 每个房源一行，首个埋点事件到达时惰性创建。
// 仅允许 ListingAnalyticsRepo 的三个记录操作修改计数列。
type ListingAnalytics struct {
	ID               uint64     `gorm:"primaryKey"`
	ListingID        uint64     `gorm:"not null;uniqueIndex:idx_listing_id" json:"listing_id"`
	ViewCount        int        `gorm:"not null;default:0" json:"view_count"`
	InquiryCount     int        `gorm:"not null;default:0" json:"inquiry_count"`
	FavoriteCount    int        `gorm:"not null;default:0" json:"favorite_count"`
	AverageViewTime  float64    `gorm:"not null;default:0" json:"average_view_time"`
	ClickThroughRate float64    `gorm:"not null;default:0" json:"click_through_rate"`
	LastViewed       *time.Time `json:"last_viewed"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ListingAnalytics) TableName() string {
	return "listing_analytics"
}
