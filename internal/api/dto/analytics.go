package dto

import "time"

// RecordViewDTO 浏览事件，时长可以为 0 所以用指针区分缺失
type RecordViewDTO struct {
	ViewDuration *float64 `json:"viewDuration" binding:"required,gte=0"`
}

// ListingAnalyticsDTO 房源统计快照
type ListingAnalyticsDTO struct {
	ListingID        uint64     `json:"listingId"`
	ViewCount        int        `json:"views"`
	InquiryCount     int        `json:"inquiries"`
	FavoriteCount    int        `json:"favorites"`
	AverageViewTime  float64    `json:"averageViewTime"`
	ClickThroughRate float64    `json:"clickThroughRate"`
	LastViewed       *time.Time `json:"lastViewed"`
}
