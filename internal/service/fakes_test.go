package service

import (
	"Rentora/internal/model"
	"context"
	"sync"
	"time"
)

// memAnalyticsRepo 内存版统计存储，单锁串行化行级读改写，
// 与生产实现保持同一并发契约
type memAnalyticsRepo struct {
	mu   sync.Mutex
	rows map[uint64]*model.ListingAnalytics
}

func newMemAnalyticsRepo() *memAnalyticsRepo {
	return &memAnalyticsRepo{rows: make(map[uint64]*model.ListingAnalytics)}
}

func (r *memAnalyticsRepo) row(listingID uint64) *model.ListingAnalytics {
	if row, ok := r.rows[listingID]; ok {
		return row
	}
	row := &model.ListingAnalytics{ListingID: listingID}
	r.rows[listingID] = row
	return row
}

func (r *memAnalyticsRepo) RecordView(ctx context.Context, listingID uint64, durationSeconds float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.row(listingID)
	row.AverageViewTime = (row.AverageViewTime*float64(row.ViewCount) + durationSeconds) / float64(row.ViewCount+1)
	row.ViewCount++
	row.ClickThroughRate = float64(row.InquiryCount) / float64(row.ViewCount) * 100
	now := time.Now()
	row.LastViewed = &now
	return nil
}

func (r *memAnalyticsRepo) IncrementInquiry(ctx context.Context, listingID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.row(listingID)
	row.InquiryCount++
	if row.ViewCount > 0 {
		row.ClickThroughRate = float64(row.InquiryCount) / float64(row.ViewCount) * 100
	}
	return nil
}

func (r *memAnalyticsRepo) IncrementFavorite(ctx context.Context, listingID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.row(listingID).FavoriteCount++
	return nil
}

func (r *memAnalyticsRepo) GetByListingID(ctx context.Context, listingID uint64) (*model.ListingAnalytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[listingID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *memAnalyticsRepo) GetByListingIDs(ctx context.Context, listingIDs []uint64) ([]*model.ListingAnalytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]*model.ListingAnalytics, 0, len(listingIDs))
	for _, id := range listingIDs {
		if row, ok := r.rows[id]; ok {
			cp := *row
			rows = append(rows, &cp)
		}
	}
	return rows, nil
}

type memListingRepo struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]*model.Listing
}

func newMemListingRepo() *memListingRepo {
	return &memListingRepo{rows: make(map[uint64]*model.Listing)}
}

func (r *memListingRepo) CreateListing(ctx context.Context, listing *model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	listing.ID = r.nextID
	listing.CreatedAt = time.Now()
	cp := *listing
	r.rows[listing.ID] = &cp
	return nil
}

func (r *memListingRepo) GetListing(ctx context.Context, id uint64) (*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *memListingRepo) GetListingByIDs(ctx context.Context, ids []uint64) ([]*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]*model.Listing, 0, len(ids))
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			cp := *row
			rows = append(rows, &cp)
		}
	}
	return rows, nil
}

func (r *memListingRepo) GetListingsByUserID(ctx context.Context, userID uint64) ([]*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]*model.Listing, 0)
	for id := uint64(1); id <= r.nextID; id++ {
		if row, ok := r.rows[id]; ok && row.UserID == userID {
			cp := *row
			rows = append(rows, &cp)
		}
	}
	return rows, nil
}

func (r *memListingRepo) UpdateContent(ctx context.Context, id uint64, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if row, ok := r.rows[id]; ok {
		row.Content = content
	}
	return nil
}

func (r *memListingRepo) DeleteListing(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

type memPropertyRepo struct {
	rows map[uint64]*model.Property
}

func newMemPropertyRepo(properties ...*model.Property) *memPropertyRepo {
	rows := make(map[uint64]*model.Property, len(properties))
	for _, p := range properties {
		rows[p.ID] = p
	}
	return &memPropertyRepo{rows: rows}
}

func (r *memPropertyRepo) GetPropertyByID(ctx context.Context, id uint64) (*model.Property, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return row, nil
}

// fakeGenerator 记录收到的 prompt 并返回固定文案
type fakeGenerator struct {
	text    string
	prompts []string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) string {
	g.prompts = append(g.prompts, prompt)
	return g.text
}
