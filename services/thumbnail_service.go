package services

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/logger"
)

// Thumbnailer writes a still image for a video file. Failure is expected
// for corrupt or zero-length uploads; the caller substitutes the default
// thumbnail.
type Thumbnailer interface {
	Extract(videoPath, thumbPath string) error
}

type ffmpegThumbnailer struct{}

func NewThumbnailer() Thumbnailer {
	return &ffmpegThumbnailer{}
}

// Extract decodes the first frame of the video and saves it as a bounded
// JPEG at thumbPath. Nothing is written when no frame can be decoded.
func (t *ffmpegThumbnailer) Extract(videoPath, thumbPath string) error {
	frame, err := firstFrame(videoPath)
	if err != nil {
		logger.Debugf("thumbnail extraction failed for %s: %v", videoPath, err)
		return err
	}

	return saveJPEG(frame, thumbPath)
}

// firstFrame asks ffmpeg for exactly one frame, bmp-encoded to a pipe.
func firstFrame(videoPath string) (image.Image, error) {
	buf := &bytes.Buffer{}

	err := ffmpeg.
		Input(videoPath, ffmpeg.KwArgs{"hide_banner": "", "loglevel": "error"}).
		Output("pipe:", ffmpeg.KwArgs{
			"vcodec":  "bmp",
			"vframes": 1,
			"format":  "image2",
		}).
		WithOutput(buf).
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("decode first frame of %s: %w", videoPath, err)
	}

	frame, err := imaging.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("parse extracted frame of %s: %w", videoPath, err)
	}

	return frame, nil
}

func saveJPEG(frame image.Image, thumbPath string) error {
	cfg := config.AppConfig

	if err := os.MkdirAll(filepath.Dir(thumbPath), 0o755); err != nil {
		return fmt.Errorf("create thumbnail directory: %w", err)
	}

	thumb := imaging.Fit(frame, cfg.Thumbnail.Width, cfg.Thumbnail.Height, imaging.Lanczos)
	return imaging.Save(thumb, thumbPath, imaging.JPEGQuality(cfg.Thumbnail.Quality))
}
