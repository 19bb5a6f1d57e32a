package service

import (
	"Rentora/internal/api/dto"
	"Rentora/internal/pkg/consts"
	"Rentora/internal/pkg/redis"
	"Rentora/internal/repository"
	"context"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// AnalyticsService 埋点聚合核心。三个记录操作刻意不做幂等：
// 同参调用两次就记两次
type AnalyticsService interface {
	RecordView(ctx context.Context, listingID uint64, durationSeconds float64) error
	RecordInquiry(ctx context.Context, listingID uint64) error
	RecordFavorite(ctx context.Context, listingID uint64) error
	// GetListingAnalytics 从未观测过的房源返回 ErrAnalyticsNotFound
	GetListingAnalytics(ctx context.Context, listingID uint64) (*dto.ListingAnalyticsDTO, error)
}

type analyticsServiceImpl struct {
	analyticsRepo repository.ListingAnalyticsRepo
}

func NewAnalyticsService(analyticsRepo repository.ListingAnalyticsRepo) AnalyticsService {
	return &analyticsServiceImpl{analyticsRepo: analyticsRepo}
}

func (s *analyticsServiceImpl) RecordView(ctx context.Context, listingID uint64, durationSeconds float64) error {
	if durationSeconds < 0 {
		return ErrParamInvalid
	}
	if err := s.analyticsRepo.RecordView(ctx, listingID, durationSeconds); err != nil {
		return err
	}
	s.afterWrite(ctx, listingID)
	return nil
}

func (s *analyticsServiceImpl) RecordInquiry(ctx context.Context, listingID uint64) error {
	if err := s.analyticsRepo.IncrementInquiry(ctx, listingID); err != nil {
		return err
	}
	s.afterWrite(ctx, listingID)
	return nil
}

func (s *analyticsServiceImpl) RecordFavorite(ctx context.Context, listingID uint64) error {
	if err := s.analyticsRepo.IncrementFavorite(ctx, listingID); err != nil {
		return err
	}
	s.afterWrite(ctx, listingID)
	return nil
}

func (s *analyticsServiceImpl) GetListingAnalytics(ctx context.Context, listingID uint64) (*dto.ListingAnalyticsDTO, error) {
	key := consts.ListingAnalyticsKey + strconv.FormatUint(listingID, 10)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var cached dto.ListingAnalyticsDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	row, err := s.analyticsRepo.GetByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrAnalyticsNotFound
	}

	snapshot := &dto.ListingAnalyticsDTO{}
	_ = copier.Copy(snapshot, row)

	if data, err := json.Marshal(snapshot); err == nil {
		_ = redis.SetWithExpiration(ctx, key, data, consts.AnalyticsCacheTTL)
	}
	return snapshot, nil
}

// afterWrite 失效快照缓存并把房源标脏，供热门榜任务消费
func (s *analyticsServiceImpl) afterWrite(ctx context.Context, listingID uint64) {
	idStr := strconv.FormatUint(listingID, 10)
	_ = redis.DeleteKey(ctx, consts.ListingAnalyticsKey+idStr)
	_ = redis.SAdd(ctx, consts.ListingDirtyKey, idStr)
}
