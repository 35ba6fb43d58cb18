package repository

import (
	"context"
	"errors"

	"github.com/user/recipevault/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository category storage
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// UpsertByName inserts the category unless one with the same name exists.
// An existing row is left untouched. On return c holds the stored row.
func (r *CategoryRepository) UpsertByName(ctx context.Context, c *model.Category) (bool, error) {
	db := r.db.WithContext(ctx)

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(c)
	if result.Error != nil {
		return false, result.Error
	}
	created := result.RowsAffected > 0

	var stored model.Category
	if err := db.Where("name = ?", c.Name).First(&stored).Error; err != nil {
		return false, err
	}
	*c = stored

	return created, nil
}

// FindByName looks a category up by name, nil when absent
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns every category ordered by name
func (r *CategoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// Count returns the number of stored categories
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&total).Error
	return total, err
}
