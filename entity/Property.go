package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID           string           `gorm:"type:char(36);primaryKey" json:"id"`
	Title        string           `gorm:"not null" json:"title"`
	Slug         string           `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string           `gorm:"type:text" json:"description"`
	Category     PropertyCategory `gorm:"type:varchar(16);not null" json:"category"`
	PropertyType PropertyType     `gorm:"type:varchar(16);not null" json:"propertyType"`

	Price   float64 `gorm:"type:decimal(15,2);not null" json:"price"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`

	Latitude  *float64 `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:decimal(10,8)" json:"longitude,omitempty"`

	Rooms       int    `gorm:"default:0" json:"rooms"`
	Bathrooms   int    `gorm:"default:0" json:"bathrooms"`
	Parking     int    `gorm:"default:0" json:"parking"`
	Water       bool   `gorm:"default:false" json:"water"`
	Electricity string `gorm:"default:None" json:"electricity"`

	Status   PropertyStatus `gorm:"type:varchar(16);default:Available" json:"status"`
	Featured bool           `gorm:"default:false" json:"featured"`

	AgentFee      float64 `gorm:"type:decimal(15,2);default:0" json:"agentFee"`
	InspectionFee float64 `gorm:"type:decimal(15,2);default:0" json:"inspectionFee"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OwnerID string `gorm:"type:char(36);not null;index" json:"ownerId"`
	Owner   *User  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`

	AreaID string `gorm:"type:char(36);not null;index" json:"areaId"`
	Area   *Area  `gorm:"foreignKey:AreaID" json:"area,omitempty"`

	Images    []PropertyImage  `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Favorites []Favorite       `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	Inquiries []ContactInquiry `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Property) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
