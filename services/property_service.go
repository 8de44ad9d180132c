package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type PropertyService struct {
	propRepo *repository.PropertyRepository
	areaRepo *repository.AreaRepository
	userRepo *repository.UserRepository
}

func NewPropertyService(
	propRepo *repository.PropertyRepository,
	areaRepo *repository.AreaRepository,
	userRepo *repository.UserRepository,
) *PropertyService {
	return &PropertyService{propRepo: propRepo, areaRepo: areaRepo, userRepo: userRepo}
}

// ----- DTOs from Controller -----

type PropertyCreate struct {
	Title         string
	Description   string
	Category      entity.PropertyCategory
	PropertyType  entity.PropertyType
	Price         float64
	Address       string
	City          string
	State         string
	Latitude      *float64
	Longitude     *float64
	Rooms         int
	Bathrooms     int
	Parking       int
	Water         bool
	Electricity   string
	AreaID        string
	Images        []string
	AgentFee      float64
	InspectionFee float64
	Featured      bool
}

// PropertyUpdate enumerates the mutable fields; nil means "leave alone".
// A non-nil Images, even an empty one, replaces the whole image set.
type PropertyUpdate struct {
	Title         *string                  `json:"title" form:"title"`
	Description   *string                  `json:"description" form:"description"`
	Category      *entity.PropertyCategory `json:"category" form:"category"`
	PropertyType  *entity.PropertyType     `json:"propertyType" form:"propertyType"`
	Price         *float64                 `json:"price" form:"price"`
	Address       *string                  `json:"address" form:"address"`
	City          *string                  `json:"city" form:"city"`
	State         *string                  `json:"state" form:"state"`
	Latitude      *float64                 `json:"latitude" form:"latitude"`
	Longitude     *float64                 `json:"longitude" form:"longitude"`
	Rooms         *int                     `json:"rooms" form:"rooms"`
	Bathrooms     *int                     `json:"bathrooms" form:"bathrooms"`
	Parking       *int                     `json:"parking" form:"parking"`
	Water         *bool                    `json:"water" form:"water"`
	Electricity   *string                  `json:"electricity" form:"electricity"`
	Status        *entity.PropertyStatus   `json:"status" form:"status"`
	Featured      *bool                    `json:"featured" form:"featured"`
	AgentFee      *float64                 `json:"agentFee" form:"agentFee"`
	InspectionFee *float64                 `json:"inspectionFee" form:"inspectionFee"`
	Images        *[]string                `json:"images" form:"-"`
}

type PropertyFilters struct {
	Page         string
	Limit        string
	Category     string
	PropertyType string
	Area         string // UUID or area slug
	MinPrice     *float64
	MaxPrice     *float64
	Featured     *bool
	Status       string
}

type PaginatedProperties struct {
	Data       []entity.Property `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// ----- Create -----

func (s *PropertyService) CreateProperty(data *PropertyCreate, ownerID string) (*entity.Property, error) {
	if _, err := s.areaRepo.FindByID(data.AreaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Area not found")
		}
		return nil, err
	}

	slug := utils.GenerateSlug(data.Title)
	count, err := s.propRepo.CountBySlug(slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Property with similar title already exists")
	}

	property := &entity.Property{
		Title:         data.Title,
		Slug:          slug,
		Description:   data.Description,
		Category:      data.Category,
		PropertyType:  data.PropertyType,
		Price:         data.Price,
		Address:       data.Address,
		City:          data.City,
		State:         data.State,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Rooms:         data.Rooms,
		Bathrooms:     data.Bathrooms,
		Parking:       data.Parking,
		Water:         data.Water,
		Electricity:   data.Electricity,
		AgentFee:      data.AgentFee,
		InspectionFee: data.InspectionFee,
		Featured:      data.Featured,
		OwnerID:       ownerID,
		AreaID:        data.AreaID,
	}

	if err := s.propRepo.Create(property); err != nil {
		// slug unique index backstops the pre-check under concurrency
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Property with similar title already exists")
		}
		return nil, err
	}

	if len(data.Images) > 0 {
		if err := s.propRepo.AddImages(property.ID, data.Images); err != nil {
			return nil, err
		}
		return s.propRepo.FindByIDWithRelations(property.ID)
	}

	return property, nil
}

// ----- List -----

func (s *PropertyService) GetProperties(filters *PropertyFilters) (*PaginatedProperties, error) {
	page, limit := utils.PaginationParams(filters.Page, filters.Limit)

	q := s.propRepo.DB.Model(&entity.Property{})

	if filters.Category != "" {
		q = q.Where("properties.category = ?", filters.Category)
	}
	if filters.PropertyType != "" {
		q = q.Where("properties.property_type = ?", filters.PropertyType)
	}
	if filters.Area != "" {
		// a UUID targets area_id directly, anything else is an area slug
		if _, err := uuid.Parse(filters.Area); err == nil {
			q = q.Where("properties.area_id = ?", filters.Area)
		} else {
			q = q.Joins("JOIN areas ON areas.id = properties.area_id").
				Where("areas.slug = ?", filters.Area)
		}
	}
	if filters.MinPrice != nil {
		q = q.Where("properties.price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Where("properties.price <= ?", *filters.MaxPrice)
	}
	if filters.Featured != nil {
		q = q.Where("properties.featured = ?", *filters.Featured)
	}
	if filters.Status != "" {
		q = q.Where("properties.status = ?", filters.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var data []entity.Property
	err := q.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Area").
		Preload("Owner").
		Order("properties.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &PaginatedProperties{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ----- Lookups -----

func (s *PropertyService) GetPropertyBySlug(slug string) (*entity.Property, error) {
	property, err := s.propRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, err
	}
	return property, nil
}

// GetPropertyByID returns the bare row. Callers must not assume images or
// the area are populated; the slug lookup is the eager one.
func (s *PropertyService) GetPropertyByID(id string) (*entity.Property, error) {
	property, err := s.propRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, err
	}
	return property, nil
}

// ----- Update -----

func (s *PropertyService) UpdateProperty(id, userID string, data *PropertyUpdate) (*entity.Property, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	property, err := s.propRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, err
	}

	isAdmin := user != nil && user.Role.OneOf(entity.RoleAdmin)
	if !isAdmin && property.OwnerID != userID {
		return nil, apperr.Forbidden("You can only edit your own properties")
	}

	fields := map[string]any{}
	if data.Title != nil {
		fields["title"] = *data.Title
	}
	if data.Description != nil {
		fields["description"] = *data.Description
	}
	if data.Category != nil {
		fields["category"] = *data.Category
	}
	if data.PropertyType != nil {
		fields["property_type"] = *data.PropertyType
	}
	if data.Price != nil {
		fields["price"] = *data.Price
	}
	if data.Address != nil {
		fields["address"] = *data.Address
	}
	if data.City != nil {
		fields["city"] = *data.City
	}
	if data.State != nil {
		fields["state"] = *data.State
	}
	if data.Latitude != nil {
		fields["latitude"] = *data.Latitude
	}
	if data.Longitude != nil {
		fields["longitude"] = *data.Longitude
	}
	if data.Rooms != nil {
		fields["rooms"] = *data.Rooms
	}
	if data.Bathrooms != nil {
		fields["bathrooms"] = *data.Bathrooms
	}
	if data.Parking != nil {
		fields["parking"] = *data.Parking
	}
	if data.Water != nil {
		fields["water"] = *data.Water
	}
	if data.Electricity != nil {
		fields["electricity"] = *data.Electricity
	}
	if data.Status != nil {
		fields["status"] = *data.Status
	}
	if data.Featured != nil {
		fields["featured"] = *data.Featured
	}
	if data.AgentFee != nil {
		fields["agent_fee"] = *data.AgentFee
	}
	if data.InspectionFee != nil {
		fields["inspection_fee"] = *data.InspectionFee
	}

	if len(fields) > 0 {
		if err := s.propRepo.Updates(id, fields); err != nil {
			return nil, err
		}
	}

	if data.Images != nil {
		if err := s.propRepo.ReplaceImages(id, *data.Images); err != nil {
			return nil, err
		}
	}

	return s.GetPropertyByID(id)
}

// ----- Delete -----

// DeleteProperty is owner-only; unlike update there is no admin override.
func (s *PropertyService) DeleteProperty(id, ownerID string) error {
	property, err := s.propRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Property not found")
		}
		return err
	}

	if property.OwnerID != ownerID {
		return apperr.Forbidden("You can only delete your own properties")
	}

	return s.propRepo.Delete(id)
}

func (s *PropertyService) GetFeaturedProperties(limit int) ([]entity.Property, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.propRepo.FindFeatured(limit)
}
