package repository

import (
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Create(fav *entity.Favorite) error {
	return r.DB.Create(fav).Error
}

func (r *FavoriteRepository) FindPair(userID, propertyID string) (*entity.Favorite, error) {
	var fav entity.Favorite
	err := r.DB.Where("user_id = ? AND property_id = ?", userID, propertyID).First(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) CountPair(userID, propertyID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	return count, err
}

func (r *FavoriteRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&entity.Favorite{}).Error
}

// FindAndCountByUser pages through a user's favorites with the favorited
// properties fully loaded.
func (r *FavoriteRepository) FindAndCountByUser(userID string, offset, limit int) ([]entity.Favorite, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favs []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).
		Preload("Property").
		Preload("Property.Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Property.Area").
		Preload("Property.Owner").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&favs).Error
	return favs, total, err
}
