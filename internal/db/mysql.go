package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"proplist/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every table the server owns.
// Referenced tables come first so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Location{},
		&model.Property{},
		&model.OTP{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every owned table, referencing tables first. Missing tables
// are ignored.
func Reset(db *gorm.DB) {
	for _, table := range []interface{}{
		&model.Property{},
		&model.OTP{},
		&model.Location{},
		&model.User{},
	} {
		_ = db.Migrator().DropTable(table)
	}
}
