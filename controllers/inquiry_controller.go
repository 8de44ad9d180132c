package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/configs"
	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
	"github.com/exclusiveng/360urban-backendmysql/services"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type CreateInquiryRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type InquiryController struct {
	inquiryService *services.InquiryService
	cfg            *configs.Config
}

func NewInquiryController(service *services.InquiryService, cfg *configs.Config) *InquiryController {
	return &InquiryController{inquiryService: service, cfg: cfg}
}

// POST /api/inquiries (public; a valid bearer token links the inquiry to
// the sender, no token means anonymous)
func (i *InquiryController) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing required fields")
		return
	}

	var userID *string
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if claims := utils.VerifyToken(strings.TrimPrefix(h, "Bearer "), i.cfg.JWTSecret); claims != nil {
			userID = &claims.UserID
		}
	}

	inquiry, err := i.inquiryService.CreateInquiry(&services.InquiryCreate{
		PropertyID: req.PropertyID,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		UserID:     userID,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Inquiry created successfully", inquiry)
}

// GET /api/inquiries
func (i *InquiryController) List(c *gin.Context) {
	result, err := i.inquiryService.GetInquiries(&services.InquiryFilters{
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
		Status:     c.Query("status"),
		PropertyID: c.Query("propertyId"),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Inquiries retrieved successfully", result)
}

// PATCH /api/inquiries/:inquiryId/status
func (i *InquiryController) UpdateStatus(c *gin.Context) {
	var req UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Status is required")
		return
	}

	inquiry, err := i.inquiryService.UpdateInquiryStatus(c.Param("inquiryId"), entity.InquiryStatus(req.Status))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Inquiry status updated successfully", inquiry)
}

// DELETE /api/inquiries/:inquiryId
func (i *InquiryController) Delete(c *gin.Context) {
	if err := i.inquiryService.DeleteInquiry(c.Param("inquiryId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Inquiry deleted successfully", nil)
}
