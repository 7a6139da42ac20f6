package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/zachristian7-dotcom/videovault/models"
)

// ErrCorruptStore marks a metadata document that exists but cannot be
// parsed. There is no recovery path; the caller decides whether that is
// fatal.
var ErrCorruptStore = errors.New("corrupt metadata document")

// Store persists the full ordered video list as one pretty-printed JSON
// array. Every mutation rewrites the whole document; the mutex makes each
// load-mutate-save cycle a single-writer unit so concurrent increments do
// not drop updates.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init creates an empty document if none exists yet.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	return s.write([]models.Video{})
}

// Load returns the full record list in document order.
func (s *Store) Load() ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Save overwrites the document with the given records.
func (s *Store) Save(videos []models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(videos)
}

// Update runs fn against the current record list and persists whatever fn
// returns. Load, mutation and save happen under one lock acquisition.
func (s *Store) Update(fn func([]models.Video) ([]models.Video, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.read()
	if err != nil {
		return err
	}

	videos, err = fn(videos)
	if err != nil {
		return err
	}

	return s.write(videos)
}

func (s *Store) read() ([]models.Video, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read metadata document: %w", err)
	}

	var videos []models.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	return videos, nil
}

func (s *Store) write(videos []models.Video) error {
	if videos == nil {
		videos = []models.Video{}
	}

	data, err := json.MarshalIndent(videos, "", "    ")
	if err != nil {
		return fmt.Errorf("encode metadata document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write metadata document: %w", err)
	}

	return nil
}
