package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const darkModeKey = "dark_mode"

// PrefStore implements ports.PrefStore. Preferences are persisted
// individually and never interact with credentials.
type PrefStore struct {
	dir string
}

// NewPrefStore creates a preference store rooted at dir.
func NewPrefStore(dir string) *PrefStore {
	return &PrefStore{dir: dir}
}

func (s *PrefStore) path() string {
	return filepath.Join(s.dir, darkModeKey)
}

// LoadDarkMode returns the persisted theme flag; absent means false.
func (s *PrefStore) LoadDarkMode() (bool, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading theme flag: %w", err)
	}
	on, err := strconv.ParseBool(strings.TrimSpace(string(b)))
	if err != nil {
		return false, nil
	}
	return on, nil
}

// SaveDarkMode persists the theme flag.
func (s *PrefStore) SaveDarkMode(on bool) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	return os.WriteFile(s.path(), []byte(strconv.FormatBool(on)), filePerm)
}
