package repository

import (
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
)

// UserRepository talks to the users table and nothing else.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// SetRefreshToken overwrites the stored refresh token; pass nil to clear it.
func (r *UserRepository) SetRefreshToken(userID string, token *string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *UserRepository) SetPassword(userID, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("password", hash).Error
}
