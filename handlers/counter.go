package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zachristian7-dotcom/videovault/services"
)

// Heart bumps the heart counter and sends the client back to the gallery.
// Unknown filenames fall through silently.
func Heart(c *gin.Context) {
	_, err := getServices().Counter.Increment(c.Request.Context(), c.Param("filename"), services.FieldHearts)
	if respondServiceError(c, err) {
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// View bumps the view counter. Fire-and-forget: clients get 204 and no
// redirect.
func View(c *gin.Context) {
	_, err := getServices().Counter.Increment(c.Request.Context(), c.Param("filename"), services.FieldViews)
	if respondServiceError(c, err) {
		return
	}

	c.Status(http.StatusNoContent)
}
