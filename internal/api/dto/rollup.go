package dto

// ListingRollupItemDTO 汇总里的单房源明细，未产生过事件的房源计数全为零
type ListingRollupItemDTO struct {
	ListingID        uint64  `json:"listingId"`
	ViewCount        int     `json:"views"`
	InquiryCount     int     `json:"inquiries"`
	FavoriteCount    int     `json:"favorites"`
	AverageViewTime  float64 `json:"averageViewTime"`
	ClickThroughRate float64 `json:"clickThroughRate"`
}

// UserRollupDTO 用户级读时汇总，不落库
type UserRollupDTO struct {
	UserID                 uint64                  `json:"userId"`
	TotalViews             int                     `json:"totalViews"`
	TotalInquiries         int                     `json:"totalInquiries"`
	TotalFavorites         int                     `json:"totalFavorites"`
	AvgViewsPerListing     float64                 `json:"avgViewsPerListing"`
	AvgInquiriesPerListing float64                 `json:"avgInquiriesPerListing"`
	ListingsCount          int                     `json:"listingsCount"`
	Listings               []*ListingRollupItemDTO `json:"listings"`
}
