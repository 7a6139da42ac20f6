package services

import (
	"context"
	"net/http"

	"github.com/zachristian7-dotcom/videovault/models"
	"github.com/zachristian7-dotcom/videovault/store"
)

const (
	FieldHearts = "hearts"
	FieldViews  = "views"
)

type CounterService interface {
	Increment(ctx context.Context, filename, field string) (bool, error)
}

type counterService struct {
	store *store.Store
}

func NewCounterService(st *store.Store) CounterService {
	return &counterService{store: st}
}

// Increment bumps one counter on the first record matching filename and
// persists the store either way. An unknown filename is not an error; the
// returned bool says whether anything changed.
func (s *counterService) Increment(ctx context.Context, filename, field string) (bool, error) {
	if field != FieldHearts && field != FieldViews {
		return false, newAppError(http.StatusBadRequest, "unknown counter field", nil)
	}

	updated := false
	err := s.store.Update(func(videos []models.Video) ([]models.Video, error) {
		for i := range videos {
			if videos[i].Filename != filename {
				continue
			}
			switch field {
			case FieldHearts:
				videos[i].Hearts++
			case FieldViews:
				videos[i].Views++
			}
			updated = true
			break
		}
		return videos, nil
	})
	if err != nil {
		return false, newAppError(http.StatusInternalServerError, "failed to save metadata", err)
	}

	return updated, nil
}
