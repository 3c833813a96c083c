package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"color-chooser/internal/colors"
	"color-chooser/internal/ui"
)

// collectionFile is the on-disk format of a FileStore.
type collectionFile struct {
	SeededAt string          `json:"seeded_at"`
	Colors   []colors.Record `json:"colors"`
}

// FileStore serves reads from memory and mirrors every seed to a JSON file,
// so the last seeded set is visible on disk between restarts.
type FileStore struct {
	mem  *MemoryStore
	path string

	// serializes writers so the file and the memory copy never disagree
	writeMu sync.Mutex
	now     func() time.Time
}

var _ Store = (*FileStore)(nil)

// OpenFileStore loads path if it exists; a missing file is an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		mem:  NewMemoryStore(),
		path: path,
		now:  time.Now,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var file collectionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	if err := s.mem.Seed(context.Background(), file.Colors); err != nil {
		return nil, fmt.Errorf("store file %s: %w", path, err)
	}

	ui.LogStatus("info", fmt.Sprintf("Loaded %d colors from %s", len(file.Colors), path))
	return s, nil
}

func (s *FileStore) Seed(ctx context.Context, records []colors.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	valid, err := colors.Validate(records)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.write(valid); err != nil {
		return err
	}
	return s.mem.Seed(ctx, valid)
}

func (s *FileStore) FindAll(ctx context.Context) ([]colors.Record, error) {
	return s.mem.FindAll(ctx)
}

func (s *FileStore) FindByName(ctx context.Context, name string) (colors.Record, error) {
	return s.mem.FindByName(ctx, name)
}

func (s *FileStore) Len(ctx context.Context) (int, error) {
	return s.mem.Len(ctx)
}

func (s *FileStore) write(records []colors.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(collectionFile{
		SeededAt: s.now().UTC().Format(time.RFC3339),
		Colors:   records,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal colors: %w", err)
	}

	// tmp then rename, so a crash never leaves a half-written file
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
