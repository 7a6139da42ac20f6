package services

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/logger"
	"github.com/zachristian7-dotcom/videovault/models"
	"github.com/zachristian7-dotcom/videovault/store"
)

type DeletionService interface {
	Delete(ctx context.Context, filename string) (bool, error)
}

type deletionService struct {
	store *store.Store
}

func NewDeletionService(st *store.Store) DeletionService {
	return &deletionService{store: st}
}

// Delete drops the first record matching filename, then removes its video
// file and its thumbnail (unless the thumbnail is the shared placeholder).
// An unknown filename persists the store unchanged and touches no files.
func (s *deletionService) Delete(ctx context.Context, filename string) (bool, error) {
	cfg := config.AppConfig

	var removed *models.Video
	err := s.store.Update(func(videos []models.Video) ([]models.Video, error) {
		kept := make([]models.Video, 0, len(videos))
		for _, v := range videos {
			if removed == nil && v.Filename == filename {
				deleted := v
				removed = &deleted
				continue
			}
			kept = append(kept, v)
		}
		return kept, nil
	})
	if err != nil {
		return false, newAppError(http.StatusInternalServerError, "failed to save metadata", err)
	}

	if removed == nil {
		return false, nil
	}

	videoPath := filepath.Join(cfg.Storage.UploadDir, removed.Filename)
	if _, err := os.Stat(videoPath); err == nil {
		if err := os.Remove(videoPath); err != nil {
			logger.Debugf("failed to remove video file %s: %v", videoPath, err)
		}
	}

	if removed.Thumbnail != "" && removed.Thumbnail != cfg.Storage.DefaultThumbnail {
		thumbPath := filepath.Join(cfg.Storage.ThumbDir, removed.Thumbnail)
		if _, err := os.Stat(thumbPath); err == nil {
			if err := os.Remove(thumbPath); err != nil {
				logger.Debugf("failed to remove thumbnail %s: %v", thumbPath, err)
			}
		}
	}

	return true, nil
}
