package model

import (
	"time"
)

type Property struct {
	ID                uint64   `gorm:"primaryKey"`
	UserID            uint64   `gorm:"not null;index:idx_owner" json:"user_id"`
	Title             string   `gorm:"type:varchar(255);not null" json:"title"`
	Description       string   `gorm:"type:text" json:"description"`
	Address           string   `gorm:"type:varchar(255)" json:"address"`
	Rent              float64  `gorm:"not null;default:0" json:"rent"`
	Bedrooms          int      `gorm:"not null;default:0" json:"bedrooms"`
	Bathrooms         float64  `gorm:"not null;default:0" json:"bathrooms"`
	Amenities         []string `gorm:"serializer:json" json:"amenities"`
	PetsAllowed       bool     `gorm:"type:tinyint(1);default:0" json:"pets_allowed"`
	UtilitiesIncluded bool     `gorm:"type:tinyint(1);default:0" json:"utilities_included"`
	IsDeleted         bool     `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Listings []Listing `gorm:"foreignKey:PropertyID;references:ID"`
}

func (Property) TableName() string {
	return "properties"
}
