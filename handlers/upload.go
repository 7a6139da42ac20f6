package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/services"
	"github.com/zachristian7-dotcom/videovault/utils"
)

// UploadForm describes what the upload endpoint accepts.
func UploadForm(c *gin.Context) {
	cfg := config.AppConfig
	utils.Success(c, gin.H{
		"file_field":         "video",
		"form_fields":        []string{"title", "description", "playlist"},
		"allowed_extensions": cfg.Storage.AllowedExtensions,
		"max_file_size_mb":   cfg.Storage.MaxFileSizeMB,
	})
}

// Upload accepts a multipart video upload and redirects to the gallery on
// success. Rejections come back as plain text, matching the original UI.
func Upload(c *gin.Context) {
	in := services.UploadInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Playlist:    c.PostForm("playlist"),
	}

	file, header, err := c.Request.FormFile("video")
	if err == nil {
		defer file.Close()
		in.File = file
		in.Filename = header.Filename
		in.Size = header.Size
	} else if !errors.Is(err, http.ErrMissingFile) {
		c.String(http.StatusOK, "No file uploaded.")
		return
	}

	if _, err := getServices().Upload.Upload(c.Request.Context(), in); err != nil {
		var appErr *services.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode == http.StatusBadRequest {
			c.String(http.StatusOK, appErr.Message)
			return
		}
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
