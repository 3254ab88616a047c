package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// RepoRootMarker is the file that marks the repository root.
	RepoRootMarker = ".repo-root"

	maxRootSearchDepth = 8
)

// ErrRepoRootNotFound is returned when no marker exists within the search depth.
var ErrRepoRootNotFound = errors.New("repository root not found")

// FindRepoRoot walks up from start looking for RepoRootMarker, checking at
// most eight directories.
func FindRepoRoot(fs afero.Fs, start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for i := 0; i < maxRootSearchDepth; i++ {
		exists, err := afero.Exists(fs, filepath.Join(dir, RepoRootMarker))
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", dir, err)
		}
		if exists {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: no %s within %d levels of %s", ErrRepoRootNotFound, RepoRootMarker, maxRootSearchDepth, start)
}
