package service

import (
	"context"
	"encoding/json"

	"github.com/selmenealex/my-finance/internal/cache"
	"github.com/selmenealex/my-finance/internal/repo"

	"golang.org/x/sync/singleflight"
)

// DataService reads and replaces the per-user data blob. The blob is opaque:
// it passes through verbatim with no shape validation.
type DataService struct {
	repo  repo.UserRepo
	cache *cache.DataCache
	sf    singleflight.Group
}

// NewDataService creates a DataService. If c is nil, caching is disabled.
func NewDataService(r repo.UserRepo, c *cache.DataCache) *DataService {
	return &DataService{repo: r, cache: c}
}

// Get returns the user's stored blob verbatim. repo.ErrNotFound bubbles up
// when the account no longer exists. Cache errors fall through to the store.
func (s *DataService) Get(ctx context.Context, username string) (json.RawMessage, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do(username, func() (interface{}, error) {
			if b, err := s.cache.Get(ctx, username); err == nil && b != nil {
				return b, nil
			}
			u, err := s.repo.GetByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			_ = s.cache.Set(ctx, username, u.Data)
			return u.Data, nil
		})
		if err != nil {
			return nil, err
		}
		return v.(json.RawMessage), nil
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.Data, nil
}

// Replace overwrites the user's blob in full. No partial update, no
// versioning: the last write wins.
func (s *DataService) Replace(ctx context.Context, username string, data json.RawMessage) error {
	if err := s.repo.ReplaceData(ctx, username, data); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, username)
	}
	return nil
}
