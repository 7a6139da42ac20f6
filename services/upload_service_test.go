package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/store"
)

// setupStorageConfig points the global config at temp directories and
// returns a fresh store.
func setupStorageConfig(t *testing.T) *store.Store {
	t.Helper()

	base := t.TempDir()
	config.AppConfig = &config.Config{
		Storage: config.StorageConfig{
			UploadDir:         filepath.Join(base, "uploads"),
			ThumbDir:          filepath.Join(base, "thumbs"),
			TempDir:           filepath.Join(base, "tmp"),
			DataFile:          filepath.Join(base, "videos.json"),
			MaxFileSizeMB:     1,
			AllowedExtensions: []string{".mp4", ".webm", ".mov"},
			DefaultThumbnail:  "default.jpg",
		},
		Thumbnail: config.ThumbnailConfig{Width: 64, Height: 64, Quality: 80},
	}

	for _, dir := range []string{
		config.AppConfig.Storage.UploadDir,
		config.AppConfig.Storage.ThumbDir,
		config.AppConfig.Storage.TempDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create %s failed: %v", dir, err)
		}
	}

	st := store.New(config.AppConfig.Storage.DataFile)
	if err := st.Init(); err != nil {
		t.Fatalf("init store failed: %v", err)
	}
	return st
}

type stubThumbnailer struct {
	fail bool
}

func (s stubThumbnailer) Extract(videoPath, thumbPath string) error {
	if s.fail {
		return errors.New("no decodable frame")
	}
	return os.WriteFile(thumbPath, []byte("jpeg"), 0o644)
}

func uploadDirEntries(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(config.AppConfig.Storage.UploadDir)
	if err != nil {
		t.Fatalf("read upload dir failed: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadHappyPath(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{})

	video, err := svc.Upload(context.Background(), UploadInput{
		File:     strings.NewReader("video bytes"),
		Filename: "clip.mp4",
		Size:     11,
		Playlist: "summer",
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if video.Filename != "clip.mp4" {
		t.Fatalf("unexpected stored name %s", video.Filename)
	}
	if video.Title != "clip.mp4" {
		t.Fatalf("empty title must default to the stored name, got %s", video.Title)
	}
	if video.Thumbnail != "clip.jpg" {
		t.Fatalf("expected clip.jpg thumbnail, got %s", video.Thumbnail)
	}
	if video.Hearts != 0 || video.Views != 0 {
		t.Fatalf("counters must start at zero")
	}
	if video.UploadedAt.IsZero() {
		t.Fatalf("uploaded_at must be set")
	}

	data, err := os.ReadFile(filepath.Join(config.AppConfig.Storage.UploadDir, "clip.mp4"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "video bytes" {
		t.Fatalf("stored bytes mismatch")
	}

	videos, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(videos) != 1 || videos[0].Filename != "clip.mp4" {
		t.Fatalf("record not appended: %+v", videos)
	}
}

func TestUploadCollisionSuffix(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{fail: true})

	for i, want := range []string{"clip.mp4", "clip_1.mp4", "clip_2.mp4"} {
		video, err := svc.Upload(context.Background(), UploadInput{
			File:     strings.NewReader("x"),
			Filename: "clip.mp4",
			Size:     1,
		})
		if err != nil {
			t.Fatalf("upload %d failed: %v", i, err)
		}
		if video.Filename != want {
			t.Fatalf("upload %d: expected %s, got %s", i, want, video.Filename)
		}
	}

	videos, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	seen := map[string]bool{}
	for _, v := range videos {
		if seen[v.Filename] {
			t.Fatalf("duplicate stored filename %s", v.Filename)
		}
		seen[v.Filename] = true
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{})

	_, err := svc.Upload(context.Background(), UploadInput{Filename: "clip.mp4"})
	if err == nil || err.Error() != "No file uploaded." {
		t.Fatalf("expected no-file rejection, got %v", err)
	}

	_, err = svc.Upload(context.Background(), UploadInput{File: strings.NewReader("x"), Filename: ""})
	if err == nil || err.Error() != "No selected file." {
		t.Fatalf("expected no-filename rejection, got %v", err)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{})

	_, err := svc.Upload(context.Background(), UploadInput{
		File:     strings.NewReader("x"),
		Filename: "malware.exe",
		Size:     1,
	})
	if err == nil || err.Error() != "Invalid file type." {
		t.Fatalf("expected type rejection, got %v", err)
	}

	if names := uploadDirEntries(t); len(names) != 0 {
		t.Fatalf("rejected upload must not write files, found %v", names)
	}
	videos, _ := st.Load()
	if len(videos) != 0 {
		t.Fatalf("rejected upload must not create records")
	}
}

func TestUploadRejectsOversizedFileBeforeWriting(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{})

	_, err := svc.Upload(context.Background(), UploadInput{
		File:     strings.NewReader("x"),
		Filename: "big.mp4",
		Size:     2 * 1024 * 1024, // ceiling is 1 MB in the test config
	})
	if err == nil || err.Error() != "File too large. Max 1MB." {
		t.Fatalf("expected size rejection, got %v", err)
	}

	if names := uploadDirEntries(t); len(names) != 0 {
		t.Fatalf("oversized upload must not touch the upload dir, found %v", names)
	}
}

func TestUploadSanitizesFilename(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{fail: true})

	video, err := svc.Upload(context.Background(), UploadInput{
		File:     strings.NewReader("x"),
		Filename: "../escape.mp4",
		Size:     1,
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if strings.Contains(video.Filename, "..") || strings.ContainsAny(video.Filename, `/\`) {
		t.Fatalf("stored name not sanitized: %s", video.Filename)
	}
}

func TestUploadFallsBackToDefaultThumbnail(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{fail: true})

	video, err := svc.Upload(context.Background(), UploadInput{
		File:     strings.NewReader("not a real video"),
		Filename: "broken.mov",
		Size:     16,
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if video.Thumbnail != "default.jpg" {
		t.Fatalf("expected default thumbnail, got %s", video.Thumbnail)
	}

	if _, err := os.Stat(filepath.Join(config.AppConfig.Storage.ThumbDir, "broken.jpg")); !os.IsNotExist(err) {
		t.Fatalf("failed extraction must not leave a thumbnail file")
	}
}

func TestUploadKeepsCallerTitle(t *testing.T) {
	st := setupStorageConfig(t)
	svc := NewUploadService(st, stubThumbnailer{})

	video, err := svc.Upload(context.Background(), UploadInput{
		File:        strings.NewReader("x"),
		Filename:    "clip.webm",
		Size:        1,
		Title:       "  My Clip  ",
		Description: " desc ",
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if video.Title != "My Clip" {
		t.Fatalf("expected trimmed caller title, got %q", video.Title)
	}
	if video.Description != "desc" {
		t.Fatalf("expected trimmed description, got %q", video.Description)
	}
}
