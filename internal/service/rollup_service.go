package service

import (
	"Rentora/internal/api/dto"
	"Rentora/internal/model"
	"Rentora/internal/pkg/consts"
	"Rentora/internal/pkg/redis"
	"Rentora/internal/repository"
	"context"
	"strconv"

	"github.com/goccy/go-json"
)

// RollupService 把一个用户名下全部房源的当前统计折叠成汇总视图。
// 纯读路径，读时计算，不落库
type RollupService interface {
	GetUserRollup(ctx context.Context, userID uint64) (*dto.UserRollupDTO, error)
}

type rollupServiceImpl struct {
	listingRepo   repository.ListingRepo
	analyticsRepo repository.ListingAnalyticsRepo
}

func NewRollupService(
	listingRepo repository.ListingRepo,
	analyticsRepo repository.ListingAnalyticsRepo,
) RollupService {
	return &rollupServiceImpl{
		listingRepo:   listingRepo,
		analyticsRepo: analyticsRepo,
	}
}

func (s *rollupServiceImpl) GetUserRollup(ctx context.Context, userID uint64) (*dto.UserRollupDTO, error) {
	key := consts.UserRollupKey + strconv.FormatUint(userID, 10)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var cached dto.UserRollupDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	listings, err := s.listingRepo.GetListingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rollup, err := s.compile(ctx, userID, listings)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rollup); err == nil {
		_ = redis.SetWithExpiration(ctx, key, data, consts.RollupCacheTTL)
	}
	return rollup, nil
}

// compile 左联当前统计后折叠，没有统计行的房源按全零参与
func (s *rollupServiceImpl) compile(ctx context.Context, userID uint64, listings []*model.Listing) (*dto.UserRollupDTO, error) {
	rollup := &dto.UserRollupDTO{
		UserID:        userID,
		ListingsCount: len(listings),
		Listings:      make([]*dto.ListingRollupItemDTO, 0, len(listings)),
	}
	if len(listings) == 0 {
		return rollup, nil
	}

	ids := make([]uint64, 0, len(listings))
	for _, listing := range listings {
		ids = append(ids, listing.ID)
	}

	rows, err := s.analyticsRepo.GetByListingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byListing := make(map[uint64]*model.ListingAnalytics, len(rows))
	for _, row := range rows {
		byListing[row.ListingID] = row
	}

	for _, listing := range listings {
		item := &dto.ListingRollupItemDTO{ListingID: listing.ID}
		if row, ok := byListing[listing.ID]; ok {
			item.ViewCount = row.ViewCount
			item.InquiryCount = row.InquiryCount
			item.FavoriteCount = row.FavoriteCount
			item.AverageViewTime = row.AverageViewTime
			item.ClickThroughRate = row.ClickThroughRate
		}

		rollup.TotalViews += item.ViewCount
		rollup.TotalInquiries += item.InquiryCount
		rollup.TotalFavorites += item.FavoriteCount
		rollup.Listings = append(rollup.Listings, item)
	}

	count := float64(rollup.ListingsCount)
	rollup.AvgViewsPerListing = float64(rollup.TotalViews) / count
	rollup.AvgInquiriesPerListing = float64(rollup.TotalInquiries) / count

	return rollup, nil
}
