package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/envelope-zero/savings-goals/internal/models"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Connect opens the SQLite database, configures the connection pool
// and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Blob{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	callbacks := []struct {
		name      string
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
	}{
		{"savings_goals:after_query_general", db.Callback().Query().After("*")},
		{"savings_goals:after_create_general", db.Callback().Create().After("*")},
		{"savings_goals:after_update_general", db.Callback().Update().After("*")},
		{"savings_goals:after_delete_general", db.Callback().Delete().After("*")},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, generalCallback); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	var sqliteErr *go_sqlite.Error
	if db.Error.Error() == "sql: database is closed" || errors.As(db.Error, &sqliteErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}
