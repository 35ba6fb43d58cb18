package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/user/recipevault/internal/model"
	"github.com/user/recipevault/internal/utils"
	"golang.org/x/sync/singleflight"
)

const categoryListKey = "categories:all"

// CategoryReader read side of the category repository
type CategoryReader interface {
	ListAll(ctx context.Context) ([]model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
}

// CategoryService cached category lookups for the pages
type CategoryService struct {
	repo   CategoryReader
	byName *utils.TTLCache[model.Category]
	sf     singleflight.Group
}

// NewCategoryService creates the service; utils.InitCache must have run
func NewCategoryService(repo CategoryReader) *CategoryService {
	return &CategoryService{
		repo:   repo,
		byName: utils.NewTTLCache[model.Category](256, 10*time.Minute),
	}
}

// List returns all categories. Concurrent misses share one query.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	if v, ok := utils.CacheGet(categoryListKey); ok {
		return v.([]model.Category), nil
	}

	// the fill is shared, so one caller going away must not cancel it for the rest
	fillCtx := context.WithoutCancel(ctx)
	val, err, _ := s.sf.Do(categoryListKey, func() (interface{}, error) {
		categories, err := s.repo.ListAll(fillCtx)
		if err != nil {
			return nil, err
		}
		utils.CacheSet(categoryListKey, categories, cache.DefaultExpiration)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]model.Category), nil
}

// Get returns the named category, nil when it does not exist
func (s *CategoryService) Get(ctx context.Context, name string) (*model.Category, error) {
	if c, ok := s.byName.Get(name); ok {
		return &c, nil
	}

	c, err := s.repo.FindByName(ctx, name)
	if err != nil || c == nil {
		return nil, err
	}
	s.byName.Set(name, *c)
	return c, nil
}

// Invalidate forgets every cached category
func (s *CategoryService) Invalidate() {
	utils.CacheDelete(categoryListKey)
	s.byName.Clear()
}

// Refresh invalidates and reloads the list
func (s *CategoryService) Refresh(ctx context.Context) {
	s.Invalidate()
	categories, err := s.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("refresh categories")
		return
	}
	log.Debug().Int("categories", len(categories)).Msg("categories refreshed")
}
