package models

import "time"

// Video is one entry of the metadata document. Filename doubles as the
// record key: collision-suffix naming at upload time keeps it unique.
type Video struct {
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Playlist    string    `json:"playlist"`
	Thumbnail   string    `json:"thumbnail"`
	Hearts      int       `json:"hearts"`
	Views       int       `json:"views"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
