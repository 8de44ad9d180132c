package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/middlewares"
	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
	"github.com/exclusiveng/360urban-backendmysql/services"
)

type CreateAreaRequest struct {
	Name        string   `json:"name" form:"name" binding:"required"`
	Description string   `json:"description" form:"description"`
	Image       string   `json:"image" form:"image"`
	Images      []string `json:"images" form:"-"`
}

type AreaController struct {
	areaService *services.AreaService
}

func NewAreaController(service *services.AreaService) *AreaController {
	return &AreaController{areaService: service}
}

// GET /api/areas
func (a *AreaController) List(c *gin.Context) {
	areas, err := a.areaService.GetAllAreas()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Areas retrieved successfully", areas)
}

// GET /api/areas/slug/:slug
func (a *AreaController) GetBySlug(c *gin.Context) {
	area, err := a.areaService.GetAreaBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Area retrieved successfully", area)
}

// GET /api/areas/:id
func (a *AreaController) GetByID(c *gin.Context) {
	area, err := a.areaService.GetAreaByID(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Area retrieved successfully", area)
}

// POST /api/areas
func (a *AreaController) Create(c *gin.Context) {
	var req CreateAreaRequest
	if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		resp.BadRequest(c, "Area name is required")
		return
	}

	// uploaded files become the gallery, first one the primary image
	images := req.Images
	image := strings.TrimSpace(req.Image)
	if urls := middlewares.UploadedImageURLs(c); len(urls) > 0 {
		images = urls
		image = urls[0]
	} else if image != "" && len(images) == 0 {
		images = []string{image}
	}

	area, err := a.areaService.CreateArea(&services.AreaCreate{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Image:       image,
		Images:      images,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Area created successfully", area)
}

// PATCH /api/areas/:id
func (a *AreaController) Update(c *gin.Context) {
	var req services.AreaUpdate
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, "Invalid update payload")
		return
	}

	newUploads := middlewares.UploadedImageURLs(c)
	existing := c.PostFormArray("existingImages")
	if len(newUploads) > 0 || len(existing) > 0 {
		merged := append(existing, newUploads...)
		req.Images = &merged
		req.Image = &merged[0]
	}

	area, err := a.areaService.UpdateArea(c.Param("id"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Area updated successfully", area)
}
