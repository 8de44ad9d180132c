package configs

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectDB opens the configured database. TranslateError makes unique
// constraint violations surface as gorm.ErrDuplicatedKey so the services
// can report them as conflicts.
func ConnectDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource + "?_foreign_keys=on")
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Area{},
		&entity.Property{},
		&entity.PropertyImage{},
		&entity.Favorite{},
		&entity.ContactInquiry{},
	)
}
