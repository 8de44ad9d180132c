package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type InquiryService struct {
	inqRepo  *repository.InquiryRepository
	propRepo *repository.PropertyRepository
}

func NewInquiryService(inqRepo *repository.InquiryRepository, propRepo *repository.PropertyRepository) *InquiryService {
	return &InquiryService{inqRepo: inqRepo, propRepo: propRepo}
}

type InquiryCreate struct {
	PropertyID string
	Email      string
	Phone      string
	Message    string
	UserID     *string // nil for anonymous inquiries
}

type InquiryFilters struct {
	Page       string
	Limit      string
	Status     string
	PropertyID string
}

type PaginatedInquiries struct {
	Data       []entity.ContactInquiry `json:"data"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"totalPages"`
}

func (s *InquiryService) CreateInquiry(data *InquiryCreate) (*entity.ContactInquiry, error) {
	if !utils.ValidateEmail(data.Email) {
		return nil, apperr.BadRequest("Invalid email format")
	}
	// length heuristic only, not a real phone validation
	if len(data.Phone) < 10 {
		return nil, apperr.BadRequest("Invalid phone number")
	}

	if _, err := s.propRepo.FindByID(data.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, err
	}

	inquiry := &entity.ContactInquiry{
		PropertyID: data.PropertyID,
		Email:      data.Email,
		Phone:      data.Phone,
		Message:    data.Message,
		Status:     entity.InquiryPending,
		UserID:     data.UserID,
	}

	if err := s.inqRepo.Create(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *InquiryService) GetInquiries(filters *InquiryFilters) (*PaginatedInquiries, error) {
	page, limit := utils.PaginationParams(filters.Page, filters.Limit)

	q := s.inqRepo.DB.Model(&entity.ContactInquiry{})

	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.PropertyID != "" {
		q = q.Where("property_id = ?", filters.PropertyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var data []entity.ContactInquiry
	err := q.
		Preload("Property").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	return &PaginatedInquiries{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// UpdateInquiryStatus overwrites the status; any status may follow any other.
func (s *InquiryService) UpdateInquiryStatus(id string, status entity.InquiryStatus) (*entity.ContactInquiry, error) {
	if !status.Valid() {
		return nil, apperr.BadRequest("Invalid inquiry status")
	}

	if _, err := s.inqRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Inquiry not found")
		}
		return nil, err
	}

	if err := s.inqRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.inqRepo.FindByID(id)
}

func (s *InquiryService) DeleteInquiry(id string) error {
	if _, err := s.inqRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Inquiry not found")
		}
		return err
	}
	return s.inqRepo.Delete(id)
}
