// Package dotdir locates the files rizz reads at startup: the .rizz/
// directory holding config.toml, and the .env files loaded before it.
package dotdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the name of the rizz directory.
	DirName = ".rizz"

	// EnvFileName is the dotenv file looked up in the working directory and
	// in the rizz directory.
	EnvFileName = ".env"
)

// Manager resolves rizz paths relative to the working and home directories.
type Manager struct {
	getwd   func() (string, error)
	homeDir func() (string, error)
}

func NewManager() *Manager {
	return &Manager{
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
	}
}

// Target returns the absolute path to the .rizz/ directory, creating it when
// missing. Order of precedence:
//  1. Provided override
//  2. Local ./.rizz/ dir
//  3. Home ~/.rizz/
func (m *Manager) Target(overrideDir string) (string, error) {
	dir, err := m.resolve(overrideDir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating rizz directory %s: %w", dir, err)
	}

	return dir, nil
}

// EnvFiles returns the existing .env files in load order: ./.env first,
// then .env inside the resolved .rizz/ directory. Loading never overrides a
// variable that is already set, so earlier files win. Nothing is created.
func (m *Manager) EnvFiles(overrideDir string) ([]string, error) {
	cwd, err := m.getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	dir, err := m.resolve(overrideDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, candidate := range []string{
		filepath.Join(cwd, EnvFileName),
		filepath.Join(dir, EnvFileName),
	} {
		if len(files) > 0 && files[0] == candidate {
			continue
		}
		ok, err := isFile(candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, candidate)
		}
	}

	return files, nil
}

// resolve picks the .rizz/ directory without touching the filesystem beyond
// a stat of the local candidate.
func (m *Manager) resolve(overrideDir string) (string, error) {
	if overrideDir != "" {
		return filepath.Abs(overrideDir)
	}

	cwd, err := m.getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	local := filepath.Join(cwd, DirName)
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		return local, nil
	}

	home, err := m.homeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
}
