package repository

import (
	"Rentora/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingAnalyticsRepo 房源统计行的唯一写入口。
// 三个记录操作各自是对单行的原子读改写：同一房源并发调用在行锁上串行，
// 不同房源互不阻塞。禁止其他路径先读后写该表。
type ListingAnalyticsRepo interface {
	RecordView(ctx context.Context, listingID uint64, durationSeconds float64) error
	IncrementInquiry(ctx context.Context, listingID uint64) error
	IncrementFavorite(ctx context.Context, listingID uint64) error
	GetByListingID(ctx context.Context, listingID uint64) (*model.ListingAnalytics, error)
	GetByListingIDs(ctx context.Context, listingIDs []uint64) ([]*model.ListingAnalytics, error)
}

type ListingAnalyticsRepoImpl struct {
	db *gorm.DB
}

func NewListingAnalyticsRepository(db *gorm.DB) ListingAnalyticsRepo {
	return &ListingAnalyticsRepoImpl{db: db}
}

// RecordView 增量均值需要读到旧值做算术，因此在事务里用行锁重读后更新。
// 首个事件到达时惰性建行，INSERT IGNORE 吸收并发建行竞争。
func (r *ListingAnalyticsRepoImpl) RecordView(ctx context.Context, listingID uint64, durationSeconds float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := model.ListingAnalytics{ListingID: listingID}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listing_id"}},
			DoNothing: true,
		}).Create(&seed).Error
		if err != nil {
			return err
		}

		var row model.ListingAnalytics
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("listing_id = ?", listingID).
			First(&row).Error
		if err != nil {
			return err
		}

		newAverage := (row.AverageViewTime*float64(row.ViewCount) + durationSeconds) / float64(row.ViewCount+1)
		newViews := row.ViewCount + 1
		ctr := float64(row.InquiryCount) / float64(newViews) * 100
		now := time.Now()

		return tx.Model(&model.ListingAnalytics{}).
			Where("listing_id = ?", listingID).
			Updates(map[string]interface{}{
				"view_count":         newViews,
				"average_view_time":  newAverage,
				"click_through_rate": ctr,
				"last_viewed":        now,
			}).Error
	})
}

// IncrementInquiry 单条 upsert 语句完成自增与 CTR 重算。
// MySQL 按赋值顺序求值，CTR 表达式读到的是自增后的 inquiry_count
func (r *ListingAnalyticsRepoImpl) IncrementInquiry(ctx context.Context, listingID uint64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "listing_id"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "inquiry_count"},
				Value:  gorm.Expr("inquiry_count + 1"),
			},
			{
				Column: clause.Column{Name: "click_through_rate"},
				Value:  gorm.Expr("CASE WHEN view_count > 0 THEN inquiry_count / view_count * 100 ELSE 0 END"),
			},
		},
	}).Create(&model.ListingAnalytics{
		ListingID:    listingID,
		InquiryCount: 1,
	}).Error
}

// IncrementFavorite 只动收藏计数，不影响 CTR
func (r *ListingAnalyticsRepoImpl) IncrementFavorite(ctx context.Context, listingID uint64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "listing_id"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "favorite_count"},
				Value:  gorm.Expr("favorite_count + 1"),
			},
		},
	}).Create(&model.ListingAnalytics{
		ListingID:     listingID,
		FavoriteCount: 1,
	}).Error
}

func (r *ListingAnalyticsRepoImpl) GetByListingID(ctx context.Context, listingID uint64) (*model.ListingAnalytics, error) {
	var row model.ListingAnalytics
	err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *ListingAnalyticsRepoImpl) GetByListingIDs(ctx context.Context, listingIDs []uint64) ([]*model.ListingAnalytics, error) {
	rows := make([]*model.ListingAnalytics, 0, len(listingIDs))
	err := r.db.WithContext(ctx).Where("listing_id IN ?", listingIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
