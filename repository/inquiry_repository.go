package repository

import (
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
)

type InquiryRepository struct {
	DB *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{DB: db}
}

func (r *InquiryRepository) Create(inq *entity.ContactInquiry) error {
	return r.DB.Create(inq).Error
}

func (r *InquiryRepository) FindByID(id string) (*entity.ContactInquiry, error) {
	var inq entity.ContactInquiry
	if err := r.DB.Where("id = ?", id).First(&inq).Error; err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *InquiryRepository) UpdateStatus(id string, status entity.InquiryStatus) error {
	return r.DB.Model(&entity.ContactInquiry{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *InquiryRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&entity.ContactInquiry{}).Error
}
