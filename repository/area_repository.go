package repository

import (
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
)

type AreaRepository struct {
	DB *gorm.DB
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{DB: db}
}

func (r *AreaRepository) Create(area *entity.Area) error {
	return r.DB.Create(area).Error
}

func (r *AreaRepository) Save(area *entity.Area) error {
	return r.DB.Save(area).Error
}

func (r *AreaRepository) FindByID(id string) (*entity.Area, error) {
	var area entity.Area
	if err := r.DB.Where("id = ?", id).First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *AreaRepository) FindBySlug(slug string) (*entity.Area, error) {
	var area entity.Area
	if err := r.DB.Where("slug = ?", slug).First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *AreaRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Area{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AreaRepository) FindAll() ([]entity.Area, error) {
	var areas []entity.Area
	if err := r.DB.Order("name ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}
