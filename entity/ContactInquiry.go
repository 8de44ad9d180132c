package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactInquiry struct {
	ID      string        `gorm:"type:char(36);primaryKey" json:"id"`
	Email   string        `gorm:"not null" json:"email"`
	Phone   string        `gorm:"not null" json:"phone"`
	Message string        `gorm:"type:text" json:"message"`
	Status  InquiryStatus `gorm:"type:varchar(16);default:Pending" json:"status"`

	PropertyID string    `gorm:"type:char(36);not null;index" json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"property,omitempty"`

	// Anonymous inquiries carry no user; nulled if the user is deleted.
	UserID *string `gorm:"type:char(36)" json:"userId,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (i *ContactInquiry) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
