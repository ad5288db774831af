package sqlite

import (
	"github.com/rahmatrdn/go-pg-manager/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens the local console store and migrates its tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&entity.QueryHistory{}, &entity.ConnectionProfile{}); err != nil {
		return nil, err
	}
	return db, nil
}
