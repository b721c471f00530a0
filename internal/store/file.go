package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/envelope-zero/savings-goals/internal/models"
)

// FilePersister stores all goals as one JSON array in a file.
type FilePersister struct {
	Path string
}

// Load reads the goals from the file. A missing or empty file holds no goals.
func (p FilePersister) Load() ([]models.Goal, error) {
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.Path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var goals []models.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.Path, err)
	}

	return goals, nil
}

// Save replaces the file contents. The new contents are written to a
// temporary file in the same directory first and then renamed.
func (p FilePersister) Save(goals []models.Goal) error {
	if goals == nil {
		goals = []models.Goal{}
	}

	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), p.Path)
}

// Ping verifies that the directory of the file is accessible.
func (p FilePersister) Ping() error {
	_, err := os.Stat(filepath.Dir(p.Path))
	return err
}
