package repository

import (
	"Rentora/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ListingRepo interface {
	CreateListing(ctx context.Context, listing *model.Listing) error
	GetListing(ctx context.Context, id uint64) (*model.Listing, error)
	GetListingByIDs(ctx context.Context, ids []uint64) ([]*model.Listing, error)
	GetListingsByUserID(ctx context.Context, userID uint64) ([]*model.Listing, error)
	UpdateContent(ctx context.Context, id uint64, content string) error
	// DeleteListing 同一事务内级联删除统计行
	DeleteListing(ctx context.Context, id uint64) error
}

type ListingRepoImpl struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepo {
	return &ListingRepoImpl{db: db}
}

func (r *ListingRepoImpl) CreateListing(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *ListingRepoImpl) GetListing(ctx context.Context, id uint64) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.WithContext(ctx).First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepoImpl) GetListingByIDs(ctx context.Context, ids []uint64) ([]*model.Listing, error) {
	listings := make([]*model.Listing, 0, len(ids))
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepoImpl) GetListingsByUserID(ctx context.Context, userID uint64) ([]*model.Listing, error) {
	listings := make([]*model.Listing, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepoImpl) UpdateContent(ctx context.Context, id uint64, content string) error {
	return r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *ListingRepoImpl) DeleteListing(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Listing{}, id).Error; err != nil {
			return err
		}
		return tx.Where("listing_id = ?", id).Delete(&model.ListingAnalytics{}).Error
	})
}
