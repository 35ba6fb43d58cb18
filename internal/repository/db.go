package repository

import (
	"fmt"
	"io"
	"time"

	"github.com/user/recipevault/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the postgres connection, pings it and migrates the schema
func InitDB(databaseURL string) (*gorm.DB, error) {
	return Open(postgres.Open(databaseURL))
}

// Open connects through any gorm dialector and prepares the schema
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&model.Category{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Closer wraps Close(db) as an io.Closer
func Closer(db *gorm.DB) io.Closer {
	return closerFunc(func() error { return Close(db) })
}

// Repositories repository set
type Repositories struct {
	DB       *gorm.DB
	Category *CategoryRepository
}

// NewRepositories builds every repository on one connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:       db,
		Category: NewCategoryRepository(db),
	}
}
