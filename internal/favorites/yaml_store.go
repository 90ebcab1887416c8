package favorites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrInvalidID = errors.New("favorite id must be positive")

type favoritesFile struct {
	Version int   `yaml:"version"`
	IDs     []int `yaml:"ids"`
}

// YAMLStore keeps favorites in insertion order in a YAML file.
type YAMLStore struct {
	path string
	ids  []int
	mu   sync.RWMutex
}

func NewYAMLStore(path string) (*YAMLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &YAMLStore{path: path}, nil
}

func (s *YAMLStore) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, id)
}

func (s *YAMLStore) Add(id int) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.ids, id) {
		return false, nil
	}
	s.ids = append(s.ids, id)
	return true, nil
}

func (s *YAMLStore) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = slices.DeleteFunc(s.ids, func(v int) bool { return v == id })
	return nil
}

func (s *YAMLStore) Toggle(id int) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return false, nil
	}
	s.ids = append(s.ids, id)
	return true, nil
}

func (s *YAMLStore) List() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

func (s *YAMLStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := favoritesFile{
		Version: 1,
		IDs:     slices.Clone(s.ids),
	}
	if file.IDs == nil {
		file.IDs = []int{}
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *YAMLStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.ids = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read favorites file: %w", err)
	}

	var file favoritesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse favorites file %q: %w", s.path, err)
	}

	ids := make([]int, 0, len(file.IDs))
	for _, id := range file.IDs {
		if id > 0 && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	s.ids = ids
	return nil
}
