package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete removes a video's record and files. Deleting an unknown filename
// still redirects; the original treated it as a no-op.
func Delete(c *gin.Context) {
	_, err := getServices().Deletion.Delete(c.Request.Context(), c.Param("filename"))
	if respondServiceError(c, err) {
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
