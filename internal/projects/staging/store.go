package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const entrySuffix = "_config.json"

// Store is a file-backed holding area for submitted configuration
// payloads. The directory doubles as the work queue: a file named
// <id>_config.json exists exactly while that submission awaits
// persistence.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Put writes raw under the entry name for id, creating the staging
// directory on demand. An existing entry with the same id is overwritten
// (last-writer-wins).
func (s *Store) Put(id string, raw []byte) error {
	if strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("stage %q: id must not contain path separators", id)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	if err := os.WriteFile(s.entryPath(id), raw, 0o644); err != nil {
		return fmt.Errorf("stage %q: %w", id, err)
	}
	return nil
}

// ListPending returns the ids of all currently staged entries, recognized
// by the entry suffix. Order follows the directory listing and is not part
// of the contract. A missing staging directory means nothing is pending.
func (s *Store) ListPending() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list staging dir: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), entrySuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), entrySuffix))
	}
	return ids, nil
}

// Read returns the raw bytes of the staged entry for id.
func (s *Store) Read(id string) ([]byte, error) {
	raw, err := os.ReadFile(s.entryPath(id))
	if err != nil {
		return nil, fmt.Errorf("read staged %q: %w", id, err)
	}
	return raw, nil
}

// Remove deletes the staged entry for id. Removing an already-absent
// entry is not an error.
func (s *Store) Remove(id string) error {
	if err := os.Remove(s.entryPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove staged %q: %w", id, err)
	}
	return nil
}

func (s *Store) entryPath(id string) string {
	return filepath.Join(s.dir, id+entrySuffix)
}
