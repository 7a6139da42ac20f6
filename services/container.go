package services

import "github.com/zachristian7-dotcom/videovault/store"

type Container struct {
	Store    *store.Store
	Gallery  GalleryService
	Upload   UploadService
	Counter  CounterService
	Deletion DeletionService
}

func NewContainer(st *store.Store) *Container {
	return &Container{
		Store:    st,
		Gallery:  NewGalleryService(),
		Upload:   NewUploadService(st, NewThumbnailer()),
		Counter:  NewCounterService(st),
		Deletion: NewDeletionService(st),
	}
}
