package service

import (
	"Rentora/internal/api/dto"
	"Rentora/internal/model"
	"Rentora/internal/pkg/consts"
	"Rentora/internal/pkg/genai"
	"Rentora/internal/pkg/redis"
	"Rentora/internal/pkg/util"
	"Rentora/internal/repository"
	"context"
	"strconv"

	"github.com/jinzhu/copier"
)

// TextGenerator 文案生成入口，生产实现为 genai.Orchestrator，调用永不失败
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) string
}

type ListingService interface {
	// GenerateListing 为指定房产生成并持久化一条文案。
	// 同一房产重复调用各生成一条独立文案，不做去重
	GenerateListing(ctx context.Context, propertyID uint64, userID uint64) (*dto.ListingDTO, error)
	GetListing(ctx context.Context, id uint64) (*dto.ListingDTO, error)
	GetUserListings(ctx context.Context, userID uint64) ([]*dto.ListingDTO, error)
	UpdateListingContent(ctx context.Context, id uint64, content string) (*dto.ListingDTO, error)
	DeleteListing(ctx context.Context, id uint64) error
	// GetTrendingListings 读取定时任务维护的热门榜
	GetTrendingListings(ctx context.Context, limit int64) ([]*dto.ListingDTO, error)
}

type listingServiceImpl struct {
	propertyRepo repository.PropertyRepo
	listingRepo  repository.ListingRepo
	generator    TextGenerator
}

func NewListingService(
	propertyRepo repository.PropertyRepo,
	listingRepo repository.ListingRepo,
	generator TextGenerator,
) ListingService {
	return &listingServiceImpl{
		propertyRepo: propertyRepo,
		listingRepo:  listingRepo,
		generator:    generator,
	}
}

func (s *listingServiceImpl) GenerateListing(ctx context.Context, propertyID uint64, userID uint64) (*dto.ListingDTO, error) {
	property, err := s.propertyRepo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	// 生成环节不会失败，最坏情况拿到兜底模板
	prompt := genai.BuildListingPrompt(property)
	content := s.generator.Generate(ctx, prompt)

	listing := &model.Listing{
		PropertyID: propertyID,
		UserID:     userID,
		Content:    content,
	}
	if err = s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	return toListingDTO(listing), nil
}

func (s *listingServiceImpl) GetListing(ctx context.Context, id uint64) (*dto.ListingDTO, error) {
	listing, err := s.listingRepo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return toListingDTO(listing), nil
}

func (s *listingServiceImpl) GetUserListings(ctx context.Context, userID uint64) ([]*dto.ListingDTO, error) {
	listings, err := s.listingRepo.GetListingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ListingDTO, 0, len(listings))
	for _, listing := range listings {
		items = append(items, toListingDTO(listing))
	}
	return items, nil
}

func (s *listingServiceImpl) UpdateListingContent(ctx context.Context, id uint64, content string) (*dto.ListingDTO, error) {
	listing, err := s.listingRepo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if err = s.listingRepo.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}

	listing.Content = content
	return toListingDTO(listing), nil
}

func (s *listingServiceImpl) DeleteListing(ctx context.Context, id uint64) error {
	listing, err := s.listingRepo.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}

	if err = s.listingRepo.DeleteListing(ctx, id); err != nil {
		return err
	}

	idStr := strconv.FormatUint(id, 10)
	_ = redis.DeleteKey(ctx, consts.ListingAnalyticsKey+idStr)
	_ = redis.ZRem(ctx, consts.ListingTrendingKey, idStr)

	return nil
}

func (s *listingServiceImpl) GetTrendingListings(ctx context.Context, limit int64) ([]*dto.ListingDTO, error) {
	if limit <= 0 || limit > consts.TrendingSize {
		limit = consts.TrendingSize
	}

	members, err := redis.ZRevRange(ctx, consts.ListingTrendingKey, 0, limit-1)
	if err != nil || len(members) == 0 {
		return []*dto.ListingDTO{}, err
	}

	ids, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.GetListingByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 按榜单顺序回排
	byID := make(map[uint64]*model.Listing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	items := make([]*dto.ListingDTO, 0, len(ids))
	for _, id := range ids {
		if listing, ok := byID[id]; ok {
			items = append(items, toListingDTO(listing))
		}
	}
	return items, nil
}

func toListingDTO(listing *model.Listing) *dto.ListingDTO {
	item := &dto.ListingDTO{}
	_ = copier.Copy(item, listing)
	return item
}
