package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type FavoriteService struct {
	favRepo  *repository.FavoriteRepository
	propRepo *repository.PropertyRepository
}

func NewFavoriteService(favRepo *repository.FavoriteRepository, propRepo *repository.PropertyRepository) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, propRepo: propRepo}
}

func (s *FavoriteService) AddFavorite(userID, propertyID string) (*entity.Favorite, error) {
	if _, err := s.propRepo.FindByID(propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, err
	}

	count, err := s.favRepo.CountPair(userID, propertyID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Property already in favorites")
	}

	fav := &entity.Favorite{UserID: userID, PropertyID: propertyID}
	if err := s.favRepo.Create(fav); err != nil {
		// the composite unique index catches concurrent duplicates
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Property already in favorites")
		}
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) RemoveFavorite(userID, propertyID string) error {
	fav, err := s.favRepo.FindPair(userID, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Favorite not found")
		}
		return err
	}
	return s.favRepo.Delete(fav.ID)
}

// GetUserFavorites returns the favorited properties themselves, paginated
// over the favorite rows.
func (s *FavoriteService) GetUserFavorites(userID, pageStr, limitStr string) (*PaginatedProperties, error) {
	page, limit := utils.PaginationParams(pageStr, limitStr)

	favs, total, err := s.favRepo.FindAndCountByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	properties := make([]entity.Property, 0, len(favs))
	for _, fav := range favs {
		if fav.Property != nil {
			properties = append(properties, *fav.Property)
		}
	}

	return &PaginatedProperties{
		Data:       properties,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *FavoriteService) IsFavorited(userID, propertyID string) (bool, error) {
	count, err := s.favRepo.CountPair(userID, propertyID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
