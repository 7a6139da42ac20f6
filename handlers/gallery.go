package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zachristian7-dotcom/videovault/utils"
)

// Index serves the filtered, sorted gallery listing.
func Index(c *gin.Context) {
	search := c.Query("search")
	sortKey := c.DefaultQuery("sort", "newest")

	videos, err := getServices().Store.Load()
	if respondServiceError(c, err) {
		return
	}

	items, playlists := getServices().Gallery.List(videos, search, sortKey)

	utils.Success(c, gin.H{
		"videos":    items,
		"playlists": playlists,
		"search":    search,
		"sort":      sortKey,
	})
}

// Playlist serves the videos of one playlist, newest first.
func Playlist(c *gin.Context) {
	name := c.Param("name")

	videos, err := getServices().Store.Load()
	if respondServiceError(c, err) {
		return
	}

	items := getServices().Gallery.PlaylistView(videos, name)

	utils.Success(c, gin.H{
		"videos":   items,
		"playlist": name,
	})
}
