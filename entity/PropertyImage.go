package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyImage struct {
	ID  string `gorm:"type:char(36);primaryKey" json:"id"`
	URL string `gorm:"type:text;not null" json:"url"`

	// Display sequence; `order` itself is an SQL keyword.
	SortOrder int `gorm:"column:sort_order;default:0" json:"order"`

	PropertyID string    `gorm:"type:char(36);not null;index" json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (i *PropertyImage) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
