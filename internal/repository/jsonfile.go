package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/equilease/lease-service/internal/models"
)

// FileStore persists the whole deal collection as an indented JSON array at
// a fixed path. Every mutation is a full read-modify-write of the file; a
// process-wide mutex serializes those cycles so concurrent writers cannot
// lose updates. A missing or unreadable file reads as an empty collection.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path, creating the
// parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

// load reads the collection. Missing or malformed content is treated as an
// empty collection, not an error; that is the store's recovery policy.
func (s *FileStore) load() []models.Deal {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Deal{}
	}
	var deals []models.Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		return []models.Deal{}
	}
	return deals
}

func (s *FileStore) persist(deals []models.Deal) error {
	data, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deals: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write deals file %s: %w", s.path, err)
	}
	return nil
}

// Save appends the deal and rewrites the collection.
func (s *FileStore) Save(ctx context.Context, deal *models.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals := s.load()
	deals = append(deals, *deal)
	return s.persist(deals)
}

// Get returns the deal with the given id.
func (s *FileStore) Get(ctx context.Context, id string) (*models.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.load() {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, ErrDealNotFound
}

// Update replaces the stored deal with the same id.
func (s *FileStore) Update(ctx context.Context, deal *models.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals := s.load()
	for i := range deals {
		if deals[i].ID == deal.ID {
			deals[i] = *deal
			return s.persist(deals)
		}
	}
	return ErrDealNotFound
}

// List returns every stored deal.
func (s *FileStore) List(ctx context.Context) ([]models.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}
