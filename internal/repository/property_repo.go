package repository

import (
	"Rentora/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PropertyRepo 房产存储，对本核心而言只读
type PropertyRepo interface {
	GetPropertyByID(ctx context.Context, id uint64) (*model.Property, error)
}

type PropertyRepoImpl struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepo {
	return &PropertyRepoImpl{db: db}
}

func (r *PropertyRepoImpl) GetPropertyByID(ctx context.Context, id uint64) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}
