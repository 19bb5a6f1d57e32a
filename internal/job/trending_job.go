package job

import (
	"Rentora/internal/pkg/consts"
	"Rentora/internal/pkg/logger"
	"Rentora/internal/pkg/redis"
	"Rentora/internal/pkg/util"
	"Rentora/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// TrendingJob 周期性把脏房源的当前统计折算成热度分并维护热门榜
type TrendingJob struct {
	analyticsRepo repository.ListingAnalyticsRepo
}

func NewTrendingJob(analyticsRepo repository.ListingAnalyticsRepo) *TrendingJob {
	return &TrendingJob{analyticsRepo: analyticsRepo}
}

func (s *TrendingJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 原子换名，避免和写路径竞争同一个脏集合
	processingKey := consts.ListingDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.ListingDirtyKey, processingKey); err != nil {
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get listing dirty set error", "err", err)
		return
	}

	listingIDs, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert listing dirty set error", "err", err)
		return
	}

	rows, err := s.analyticsRepo.GetByListingIDs(ctx, listingIDs)
	if err != nil {
		log.ErrorContext(ctx, "load analytics for trending error", "err", err)
		return
	}

	for _, row := range rows {
		score := float64(row.ViewCount) +
			5*float64(row.InquiryCount) +
			2*float64(row.FavoriteCount)
		member := strconv.FormatUint(row.ListingID, 10)
		if err = redis.ZAdd(ctx, consts.ListingTrendingKey, score, member); err != nil {
			log.ErrorContext(ctx, "update trending score error", "listingID", row.ListingID, "err", err)
		}
	}

	// 只保留榜单前 TrendingSize 名
	_ = redis.ZRemRangeByRank(ctx, consts.ListingTrendingKey, 0, -int64(consts.TrendingSize)-1)

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete trending processing set error", "err", err)
	}

	log.InfoContext(ctx, "trending listings refreshed", "listing_count", len(rows))
}
