package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type AreaService struct {
	areaRepo *repository.AreaRepository
	propRepo *repository.PropertyRepository
}

func NewAreaService(areaRepo *repository.AreaRepository, propRepo *repository.PropertyRepository) *AreaService {
	return &AreaService{areaRepo: areaRepo, propRepo: propRepo}
}

type AreaCreate struct {
	Name        string
	Description string
	Image       string
	Images      []string
}

type AreaUpdate struct {
	Name        *string   `json:"name" form:"name"`
	Description *string   `json:"description" form:"description"`
	Image       *string   `json:"image" form:"image"`
	Images      *[]string `json:"images" form:"-"`
}

// AreaWithCount carries the computed property count, which is not stored
// on the entity.
type AreaWithCount struct {
	entity.Area
	PropertyCount int64 `json:"propertyCount"`
}

func imagesJSON(urls []string) datatypes.JSON {
	if urls == nil {
		urls = []string{}
	}
	raw, _ := json.Marshal(urls)
	return datatypes.JSON(raw)
}

func (s *AreaService) GetAllAreas() ([]entity.Area, error) {
	return s.areaRepo.FindAll()
}

func (s *AreaService) withCount(area *entity.Area) (*AreaWithCount, error) {
	count, err := s.propRepo.CountByArea(area.ID)
	if err != nil {
		return nil, err
	}
	return &AreaWithCount{Area: *area, PropertyCount: count}, nil
}

func (s *AreaService) GetAreaBySlug(slug string) (*AreaWithCount, error) {
	area, err := s.areaRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Area not found")
		}
		return nil, err
	}
	return s.withCount(area)
}

func (s *AreaService) GetAreaByID(id string) (*AreaWithCount, error) {
	area, err := s.areaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Area not found")
		}
		return nil, err
	}
	return s.withCount(area)
}

func (s *AreaService) CreateArea(data *AreaCreate) (*entity.Area, error) {
	slug := utils.GenerateSlug(data.Name)

	count, err := s.areaRepo.CountBySlug(slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.BadRequest(fmt.Sprintf("Area with name %q already exists", data.Name))
	}

	area := &entity.Area{
		Name:        data.Name,
		Slug:        slug,
		Description: data.Description,
		Image:       data.Image,
		Images:      imagesJSON(data.Images),
	}

	if err := s.areaRepo.Create(area); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest(fmt.Sprintf("Area with name %q already exists", data.Name))
		}
		return nil, err
	}
	return area, nil
}

// UpdateArea overwrites any provided field; a name change regenerates the slug.
func (s *AreaService) UpdateArea(id string, data *AreaUpdate) (*entity.Area, error) {
	area, err := s.areaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Area not found")
		}
		return nil, err
	}

	if data.Name != nil && *data.Name != "" {
		area.Name = *data.Name
		area.Slug = utils.GenerateSlug(*data.Name)
	}
	if data.Description != nil {
		area.Description = *data.Description
	}
	if data.Image != nil {
		area.Image = *data.Image
	}
	if data.Images != nil {
		area.Images = imagesJSON(*data.Images)
	}

	if err := s.areaRepo.Save(area); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest(fmt.Sprintf("Area with name %q already exists", area.Name))
		}
		return nil, err
	}
	return area, nil
}
