package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// At most one favorite per (user, property) pair — the DB index is the
// race backstop, not the service-layer pre-check.
type Favorite struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_favorites_user_property" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	PropertyID string    `gorm:"type:char(36);not null;uniqueIndex:idx_favorites_user_property" json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"property,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (f *Favorite) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
