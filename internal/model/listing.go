package model

import (
	"time"
)

type Listing struct {
	ID         uint64 `gorm:"primaryKey"`
	PropertyID uint64 `gorm:"not null;index:idx_property_id" json:"property_id"`
	// UserID 随生成请求冗余写入，汇总查询直接按该列过滤
	UserID    uint64 `gorm:"not null;index:idx_user_id" json:"user_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Property Property `gorm:"foreignKey:PropertyID;references:ID"`
}

func (Listing) TableName() string {
	return "listings"
}
