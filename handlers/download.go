package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/utils"
)

// Download streams a raw video file as an attachment.
func Download(c *gin.Context) {
	filename := c.Param("filename")

	// Reject names that would escape the upload directory.
	if filename == "" || filename != filepath.Base(filename) {
		utils.Error(c, http.StatusBadRequest, "invalid filename")
		return
	}

	absPath := filepath.Join(config.AppConfig.Storage.UploadDir, filename)
	if _, err := os.Stat(absPath); err != nil {
		utils.Error(c, http.StatusNotFound, "file not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	http.ServeFile(c.Writer, c.Request, absPath)
}
