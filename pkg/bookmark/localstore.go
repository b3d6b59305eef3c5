package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// LocalSubject is the single anonymous subject of the file-backed store,
// mirroring the fixed storage key of the browser build.
const LocalSubject = "local"

// LocalStore persists the bookmark set as a JSON array of job ids in one
// file. State survives restarts on the originating host only; clearing the
// file clears the set. No authentication is involved.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

func NewLocalStore(path string) *LocalStore { return &LocalStore{path: path} }

func (s *LocalStore) List(ctx context.Context, _ string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *LocalStore) Contains(ctx context.Context, _ string, jobID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.read()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (s *LocalStore) Add(ctx context.Context, _ string, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.read()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == jobID {
			return nil
		}
	}
	return s.write(append(ids, jobID))
}

func (s *LocalStore) Remove(ctx context.Context, _ string, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.read()
	if err != nil {
		return err
	}
	out := ids[:0]
	for _, id := range ids {
		if id != jobID {
			out = append(out, id)
		}
	}
	return s.write(out)
}

func (s *LocalStore) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []string{}, nil // created empty on first access
	}
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	return ids, nil
}

func (s *LocalStore) write(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}
