package service

import (
	"context"
	"time"
)

// RefreshService periodically reloads cached categories so rows added by
// the seeder show up without a restart
type RefreshService struct {
	categories *CategoryService
	interval   time.Duration
	done       chan struct{}
}

// NewRefreshService creates the refresher
func NewRefreshService(categories *CategoryService, interval time.Duration) *RefreshService {
	return &RefreshService{
		categories: categories,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

// Start runs one refresh immediately, then on every tick until ctx ends
func (s *RefreshService) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.categories.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.categories.Refresh(ctx)
			}
		}
	}()
}

// Done is closed once the refresh loop has exited
func (s *RefreshService) Done() <-chan struct{} {
	return s.done
}
