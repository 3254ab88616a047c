package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// SetenvFunc stores one loaded secret. os.Setenv satisfies it.
type SetenvFunc func(key, value string) error

// LoadSecrets reads a dotenv-style file and hands every entry to setenv.
//
// Each non-blank line must be KEY=VALUE or export KEY=VALUE. VALUE may be
// wrapped in single or double quotes, which are stripped. Lines starting with
// # are ignored. The returned keys are in file order.
func LoadSecrets(fs afero.Fs, path string, setenv SetenvFunc) ([]string, error) {
	if setenv == nil {
		setenv = os.Setenv
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets file: %w", err)
	}
	defer f.Close()

	var keys []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseSecretLine(scanner.Text())
		if err != nil {
			return keys, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		if !ok {
			continue
		}
		if err := setenv(key, value); err != nil {
			return keys, fmt.Errorf("failed to set %s: %w", key, err)
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return keys, fmt.Errorf("failed to read secrets file: %w", err)
	}

	return keys, nil
}

// parseSecretLine returns ok=false for lines that carry no entry.
func parseSecretLine(line string) (key, value string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false, nil
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false, fmt.Errorf("expected KEY=VALUE")
	}

	// allows sourcing the same file from a shell
	key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
	if key == "" {
		return "", "", false, fmt.Errorf("empty key")
	}

	value = strings.Trim(strings.TrimSpace(value), `"'`)
	return key, value, true, nil
}
