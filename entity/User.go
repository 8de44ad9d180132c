package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string   `gorm:"type:char(36);primaryKey" json:"id"`
	Email     string   `gorm:"uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"not null" json:"-"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     string   `json:"phone"`
	Role      UserRole `gorm:"type:varchar(16);not null;default:agent" json:"role"`

	IsVerified bool `gorm:"default:false" json:"isVerified"`

	// Single active refresh token per user; nil once logged out.
	RefreshToken *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Properties []Property       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites  []Favorite       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Inquiries  []ContactInquiry `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Public is the projection returned by the API: never the hash, never the
// refresh token.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"phone":     u.Phone,
		"role":      u.Role,
	}
}
