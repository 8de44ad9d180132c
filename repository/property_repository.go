package repository

import (
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
)

type PropertyRepository struct {
	DB *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(p *entity.Property) error {
	return r.DB.Create(p).Error
}

// FindByID loads the bare row, no relations. Slug lookup is the eager one.
func (r *PropertyRepository) FindByID(id string) (*entity.Property, error) {
	var p entity.Property
	if err := r.DB.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) FindBySlug(slug string) (*entity.Property, error) {
	var p entity.Property
	err := r.DB.Where("slug = ?", slug).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Area").
		Preload("Owner").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) FindByIDWithRelations(id string) (*entity.Property, error) {
	var p entity.Property
	err := r.DB.Where("id = ?", id).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Area").
		Preload("Owner").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Property{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PropertyRepository) CountByArea(areaID string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Property{}).Where("area_id = ?", areaID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PropertyRepository) Updates(id string, fields map[string]any) error {
	return r.DB.Model(&entity.Property{}).Where("id = ?", id).Updates(fields).Error
}

func (r *PropertyRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&entity.Property{}).Error
}

// ReplaceImages drops the whole image set and inserts the new list with
// fresh sequential order.
func (r *PropertyRepository) ReplaceImages(propertyID string, urls []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", propertyID).Delete(&entity.PropertyImage{}).Error; err != nil {
			return err
		}
		for i, url := range urls {
			img := entity.PropertyImage{URL: url, SortOrder: i, PropertyID: propertyID}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddImages inserts the list atomically; a failed insert leaves no
// partial image set behind.
func (r *PropertyRepository) AddImages(propertyID string, urls []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, url := range urls {
			img := entity.PropertyImage{URL: url, SortOrder: i, PropertyID: propertyID}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PropertyRepository) FindFeatured(limit int) ([]entity.Property, error) {
	var props []entity.Property
	err := r.DB.Where("featured = ? AND status = ?", true, entity.StatusAvailable).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Area").
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Find(&props).Error
	return props, err
}
