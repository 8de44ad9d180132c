package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/exclusiveng/360urban-backendmysql/configs"
	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Area{},
		&entity.Property{},
		&entity.PropertyImage{},
		&entity.Favorite{},
		&entity.ContactInquiry{},
	))
	return db
}

func newTestConfig() *configs.Config {
	return &configs.Config{
		JWTSecret:        "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		BcryptCost:       bcrypt.MinCost,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.UserRole) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword("Passw0rd!", bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		Email:     email,
		Password:  hash,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedArea(t *testing.T, db *gorm.DB, name string) *entity.Area {
	t.Helper()
	area := &entity.Area{Name: name, Slug: utils.GenerateSlug(name)}
	require.NoError(t, db.Create(area).Error)
	return area
}

func seedProperty(t *testing.T, db *gorm.DB, owner *entity.User, area *entity.Area, title string, price float64) *entity.Property {
	t.Helper()
	p := &entity.Property{
		Title:        title,
		Slug:         utils.GenerateSlug(title),
		Description:  "seeded",
		Category:     entity.CategoryRent,
		PropertyType: entity.TypeFlat,
		Price:        price,
		Address:      "1 Test Close",
		City:         "Abuja",
		State:        "FCT",
		Status:       entity.StatusAvailable,
		OwnerID:      owner.ID,
		AreaID:       area.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
