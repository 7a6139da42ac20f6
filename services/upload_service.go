package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/logger"
	"github.com/zachristian7-dotcom/videovault/models"
	"github.com/zachristian7-dotcom/videovault/store"
)

type UploadInput struct {
	File        io.Reader
	Filename    string
	Size        int64
	Title       string
	Description string
	Playlist    string
}

type UploadService interface {
	Upload(ctx context.Context, in UploadInput) (models.Video, error)
}

type uploadService struct {
	store       *store.Store
	thumbnailer Thumbnailer
}

func NewUploadService(st *store.Store, thumbnailer Thumbnailer) UploadService {
	return &uploadService{store: st, thumbnailer: thumbnailer}
}

// Upload runs the whole intake pipeline: validation, collision-safe
// naming, staged persistence, thumbnail extraction and the metadata
// append. Any rejection happens before the first byte lands in the
// upload directory.
func (s *uploadService) Upload(ctx context.Context, in UploadInput) (models.Video, error) {
	cfg := config.AppConfig

	if in.File == nil {
		return models.Video{}, newNoFileError()
	}
	if strings.TrimSpace(in.Filename) == "" {
		return models.Video{}, newNoFilenameError()
	}
	if !isFileExtensionAllowed(in.Filename, cfg.Storage.AllowedExtensions) {
		return models.Video{}, newUnsupportedTypeError()
	}

	filename := resolveCollision(cfg.Storage.UploadDir, sanitizeFilename(in.Filename))
	dstPath := filepath.Join(cfg.Storage.UploadDir, filename)

	if in.Size > cfg.Storage.MaxFileSizeBytes() {
		return models.Video{}, newFileTooLargeError(cfg.Storage.MaxFileSizeMB)
	}

	if err := s.persist(in.File, dstPath); err != nil {
		return models.Video{}, newAppError(http.StatusInternalServerError, "failed to store upload", err)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = filename
	}

	thumbName := thumbnailName(filename)
	thumbPath := filepath.Join(cfg.Storage.ThumbDir, thumbName)
	if err := s.thumbnailer.Extract(dstPath, thumbPath); err != nil {
		// Non-fatal: the gallery shows the shared placeholder instead.
		thumbName = cfg.Storage.DefaultThumbnail
	}

	video := models.Video{
		Filename:    filename,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Playlist:    strings.TrimSpace(in.Playlist),
		Thumbnail:   thumbName,
		UploadedAt:  time.Now(),
	}

	err := s.store.Update(func(videos []models.Video) ([]models.Video, error) {
		return append(videos, video), nil
	})
	if err != nil {
		return models.Video{}, newAppError(http.StatusInternalServerError, "failed to save metadata", err)
	}

	logger.Debugf("stored upload %s (%d bytes, thumbnail %s)", filename, in.Size, thumbName)
	return video, nil
}

// persist stages the upload under a throwaway name and renames it into
// place, so an interrupted copy never leaves a half-written video behind.
func (s *uploadService) persist(src io.Reader, dstPath string) error {
	cfg := config.AppConfig

	if err := os.MkdirAll(cfg.Storage.TempDir, 0o755); err != nil {
		return fmt.Errorf("create temp directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}

	tmpPath := filepath.Join(cfg.Storage.TempDir, uuid.New().String())
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("move upload into place: %w", err)
	}

	return nil
}

// resolveCollision appends _1, _2, ... before the extension until the name
// is free in dir. This is what keeps filename unique across the store.
func resolveCollision(dir, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	candidate := filename
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
}
