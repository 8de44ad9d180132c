package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
	"github.com/exclusiveng/360urban-backendmysql/services"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

type FavoriteController struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteController(service *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: service}
}

// POST /api/favorites/:propertyId
func (f *FavoriteController) Add(c *gin.Context) {
	favorite, err := f.favoriteService.AddFavorite(utils.CurrentUserID(c), c.Param("propertyId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Property added to favorites", favorite)
}

// DELETE /api/favorites/:propertyId
func (f *FavoriteController) Remove(c *gin.Context) {
	if err := f.favoriteService.RemoveFavorite(utils.CurrentUserID(c), c.Param("propertyId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Property removed from favorites", nil)
}

// GET /api/favorites
func (f *FavoriteController) List(c *gin.Context) {
	result, err := f.favoriteService.GetUserFavorites(utils.CurrentUserID(c), c.Query("page"), c.Query("limit"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "User favorites retrieved successfully", result)
}

// GET /api/favorites/:propertyId/check
func (f *FavoriteController) Check(c *gin.Context) {
	favorited, err := f.favoriteService.IsFavorited(utils.CurrentUserID(c), c.Param("propertyId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "", gin.H{"favorited": favorited})
}
