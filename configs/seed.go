package configs

import (
	"log"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:      cfg.AdminEmail,
		Password:   hash,
		FirstName:  "Admin",
		LastName:   "Seed",
		Role:       entity.RoleAdmin,
		IsVerified: true,
	}
	return db.Create(&admin).Error
}

// SeedAreas inserts the starter neighbourhoods if they are not there yet.
func SeedAreas() error {
	seeds := []struct {
		Name        string
		Description string
		Image       string
	}{
		{"Jabi", "A fast-growing district known for upscale residences, shopping centres, and proximity to the city centre. Popular with young professionals and families.", "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&q=80"},
		{"Lugbe", "One of Abuja's most affordable satellite towns with rapid development. Great for budget-conscious renters and first-time buyers.", "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&q=80"},
		{"Katampe", "A prestigious hill-top neighbourhood offering serenity, views, and high-end properties. Ideal for executives and diplomats.", "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&q=80"},
		{"Maitama", "Abuja's premier district — home to embassies, luxury estates, and top-tier amenities. The gold standard of urban living.", "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80"},
		{"Gwarinpa", "Africa's largest housing estate, known for residential comfort, family-friendly layouts, and vibrant community life.", "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80"},
		{"Wuse", "A bustling commercial and residential hub at the heart of Abuja. Close to markets, offices, and nightlife.", "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=800&q=80"},
	}

	for _, s := range seeds {
		slug := utils.GenerateSlug(s.Name)
		var count int64
		if err := db.Model(&entity.Area{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		area := entity.Area{
			Name:        s.Name,
			Slug:        slug,
			Description: s.Description,
			Image:       s.Image,
		}
		if err := db.Create(&area).Error; err != nil {
			return err
		}
	}

	log.Println("areas seeded")
	return nil
}
