package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/middlewares"
	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
	"github.com/exclusiveng/360urban-backendmysql/services"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type CreatePropertyRequest struct {
	Title         string   `json:"title" form:"title" binding:"required"`
	Description   string   `json:"description" form:"description" binding:"required"`
	Category      string   `json:"category" form:"category" binding:"required"`
	PropertyType  string   `json:"propertyType" form:"propertyType" binding:"required"`
	Price         float64  `json:"price" form:"price" binding:"required"`
	Address       string   `json:"address" form:"address" binding:"required"`
	City          string   `json:"city" form:"city"`
	State         string   `json:"state" form:"state"`
	AreaID        string   `json:"areaId" form:"areaId" binding:"required"`
	Latitude      *float64 `json:"latitude" form:"latitude"`
	Longitude     *float64 `json:"longitude" form:"longitude"`
	Rooms         int      `json:"rooms" form:"rooms"`
	Bathrooms     int      `json:"bathrooms" form:"bathrooms"`
	Parking       int      `json:"parking" form:"parking"`
	Water         bool     `json:"water" form:"water"`
	Electricity   string   `json:"electricity" form:"electricity"`
	AgentFee      float64  `json:"agentFee" form:"agentFee"`
	InspectionFee float64  `json:"inspectionFee" form:"inspectionFee"`
	Featured      bool     `json:"featured" form:"featured"`
	Images        []string `json:"images" form:"-"`
}

type PropertyController struct {
	propertyService *services.PropertyService
}

func NewPropertyController(service *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: service}
}

// POST /api/properties
func (p *PropertyController) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, "Missing required fields (title, description, category, propertyType, price, address, or areaId)")
		return
	}

	if req.City == "" {
		req.City = "Abuja"
	}
	if req.State == "" {
		req.State = "FCT"
	}

	// uploaded files win over URLs passed in the body
	images := req.Images
	if urls := middlewares.UploadedImageURLs(c); len(urls) > 0 {
		images = urls
	}

	property, err := p.propertyService.CreateProperty(&services.PropertyCreate{
		Title:         req.Title,
		Description:   req.Description,
		Category:      entity.PropertyCategory(req.Category),
		PropertyType:  entity.PropertyType(req.PropertyType),
		Price:         req.Price,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Rooms:         req.Rooms,
		Bathrooms:     req.Bathrooms,
		Parking:       req.Parking,
		Water:         req.Water,
		Electricity:   req.Electricity,
		AreaID:        req.AreaID,
		Images:        images,
		AgentFee:      req.AgentFee,
		InspectionFee: req.InspectionFee,
		Featured:      req.Featured,
	}, utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Property created successfully", property)
}

// GET /api/properties
func (p *PropertyController) List(c *gin.Context) {
	filters := &services.PropertyFilters{
		Page:         c.Query("page"),
		Limit:        c.Query("limit"),
		Category:     c.Query("category"),
		PropertyType: c.Query("propertyType"),
		Area:         c.Query("area"),
		Status:       c.Query("status"),
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		filters.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		filters.MaxPrice = &v
	}
	if c.Query("featured") == "true" {
		t := true
		filters.Featured = &t
	}

	result, err := p.propertyService.GetProperties(filters)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Properties retrieved successfully", result)
}

// GET /api/properties/featured
func (p *PropertyController) Featured(c *gin.Context) {
	limit := 6
	if n, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = n
	}

	properties, err := p.propertyService.GetFeaturedProperties(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Featured properties retrieved successfully", properties)
}

// GET /api/properties/slug/:slug
func (p *PropertyController) GetBySlug(c *gin.Context) {
	property, err := p.propertyService.GetPropertyBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Property retrieved successfully", property)
}

// GET /api/properties/:id
func (p *PropertyController) GetByID(c *gin.Context) {
	property, err := p.propertyService.GetPropertyByID(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Property retrieved successfully", property)
}

// PATCH /api/properties/:id
func (p *PropertyController) Update(c *gin.Context) {
	var req services.PropertyUpdate
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, "Invalid update payload")
		return
	}

	// new uploads replace the set together with whatever existing URLs the
	// client wants to keep
	if urls := middlewares.UploadedImageURLs(c); len(urls) > 0 {
		merged := append(c.PostFormArray("existingImages"), urls...)
		req.Images = &merged
	}

	property, err := p.propertyService.UpdateProperty(c.Param("id"), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Property updated successfully", property)
}

// DELETE /api/properties/:id
func (p *PropertyController) Delete(c *gin.Context) {
	if err := p.propertyService.DeleteProperty(c.Param("id"), utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Property deleted successfully", nil)
}
