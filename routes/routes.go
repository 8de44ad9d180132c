package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/configs"
	"github.com/exclusiveng/360urban-backendmysql/controllers"
	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/middlewares"
	"github.com/exclusiveng/360urban-backendmysql/repository"
	"github.com/exclusiveng/360urban-backendmysql/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	propRepo := repository.NewPropertyRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	inqRepo := repository.NewInquiryRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg)
	propSvc := services.NewPropertyService(propRepo, areaRepo, userRepo)
	areaSvc := services.NewAreaService(areaRepo, propRepo)
	favSvc := services.NewFavoriteService(favRepo, propRepo)
	inqSvc := services.NewInquiryService(inqRepo, propRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	propCtrl := controllers.NewPropertyController(propSvc)
	areaCtrl := controllers.NewAreaController(areaSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	inqCtrl := controllers.NewInquiryController(inqSvc, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh-token", authCtrl.RefreshToken)
		auth.POST("/logout", middlewares.AuthMiddleware(cfg), authCtrl.Logout)
		auth.POST("/change-password", middlewares.AuthMiddleware(cfg), authCtrl.ChangePassword)
	}

	// Properties
	properties := api.Group("/properties")
	{
		properties.GET("", propCtrl.List)
		properties.GET("/featured", propCtrl.Featured)
		properties.GET("/slug/:slug", propCtrl.GetBySlug)
		properties.GET("/:id", propCtrl.GetByID)

		properties.POST("", middlewares.AuthMiddleware(cfg), middlewares.ImageUpload("properties", 10), propCtrl.Create)
		properties.PATCH("/:id", middlewares.AuthMiddleware(cfg), middlewares.ImageUpload("properties", 10), propCtrl.Update)
		properties.DELETE("/:id", middlewares.AuthMiddleware(cfg), propCtrl.Delete)
	}

	// Areas
	areas := api.Group("/areas")
	{
		areas.GET("", areaCtrl.List)
		areas.GET("/slug/:slug", areaCtrl.GetBySlug)
		areas.GET("/:id", areaCtrl.GetByID)

		staff := areas.Group("", middlewares.AuthMiddleware(cfg, entity.RoleAdmin, entity.RoleAgent))
		staff.POST("", middlewares.ImageUpload("areas", 5), areaCtrl.Create)
		staff.PATCH("/:id", middlewares.ImageUpload("areas", 5), areaCtrl.Update)
	}

	// Favorites (all bearer-required)
	favorites := api.Group("/favorites", middlewares.AuthMiddleware(cfg))
	{
		favorites.POST("/:propertyId", favCtrl.Add)
		favorites.DELETE("/:propertyId", favCtrl.Remove)
		favorites.GET("", favCtrl.List)
		favorites.GET("/:propertyId/check", favCtrl.Check)
	}

	// Inquiries
	inquiries := api.Group("/inquiries")
	{
		inquiries.POST("", inqCtrl.Create)
		inquiries.GET("", middlewares.AuthMiddleware(cfg), inqCtrl.List)
		inquiries.PATCH("/:inquiryId/status", middlewares.AuthMiddleware(cfg), inqCtrl.UpdateStatus)
		inquiries.DELETE("/:inquiryId", middlewares.AuthMiddleware(cfg), inqCtrl.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
		})
	})
}
