package services

import (
	"sort"
	"strings"

	"github.com/zachristian7-dotcom/videovault/models"
)

// prettyDateLayout renders "Jan 02, 2006 - 03:04 PM" for the gallery.
const prettyDateLayout = "Jan 02, 2006 - 03:04 PM"

// GalleryItem is a video record plus its display date. The date is
// derived at query time, never stored.
type GalleryItem struct {
	models.Video
	PrettyDate string `json:"pretty_date"`
}

type GalleryService interface {
	List(videos []models.Video, search, sortKey string) ([]GalleryItem, []string)
	PlaylistView(videos []models.Video, playlist string) []GalleryItem
}

type galleryService struct{}

func NewGalleryService() GalleryService {
	return &galleryService{}
}

// List filters by the search term, orders by the sort key and reports the
// distinct playlists of the filtered set for navigation.
func (s *galleryService) List(videos []models.Video, search, sortKey string) ([]GalleryItem, []string) {
	items := attachDates(videos)

	search = strings.ToLower(strings.TrimSpace(search))
	if search != "" {
		filtered := make([]GalleryItem, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Title), search) ||
				strings.Contains(strings.ToLower(item.Description), search) ||
				strings.Contains(strings.ToLower(item.Filename), search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	switch sortKey {
	case "newest":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].UploadedAt.After(items[j].UploadedAt)
		})
	case "oldest":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].UploadedAt.Before(items[j].UploadedAt)
		})
	case "views":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Views > items[j].Views
		})
	case "hearts":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Hearts > items[j].Hearts
		})
	}

	return items, distinctPlaylists(items)
}

// PlaylistView returns the videos of one playlist, newest first.
func (s *galleryService) PlaylistView(videos []models.Video, playlist string) []GalleryItem {
	items := make([]GalleryItem, 0)
	for _, v := range videos {
		if v.Playlist == playlist {
			items = append(items, GalleryItem{Video: v, PrettyDate: v.UploadedAt.Format(prettyDateLayout)})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UploadedAt.After(items[j].UploadedAt)
	})

	return items
}

func attachDates(videos []models.Video) []GalleryItem {
	items := make([]GalleryItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, GalleryItem{Video: v, PrettyDate: v.UploadedAt.Format(prettyDateLayout)})
	}
	return items
}

func distinctPlaylists(items []GalleryItem) []string {
	seen := map[string]bool{}
	playlists := make([]string, 0)
	for _, item := range items {
		if item.Playlist != "" && !seen[item.Playlist] {
			seen[item.Playlist] = true
			playlists = append(playlists, item.Playlist)
		}
	}
	sort.Strings(playlists)
	return playlists
}
