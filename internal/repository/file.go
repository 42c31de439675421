package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"theme-park-ticketing/pkg/logger"

	"go.uber.org/zap"
)

// readCollection loads the records at path. A missing file is created empty;
// a corrupt or unreadable file is overwritten with an empty collection. Both
// cases return an empty slice. Losing a corrupt file's contents is the
// recovery policy of the system being reproduced.
func readCollection[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithComponent("repository").Info("collection file missing, creating empty",
			zap.String("path", path))
		if err := writeCollection(path, []T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.WithComponent("repository").Warn("corrupt collection file, resetting to empty",
			zap.String("path", path), zap.Error(err))
		if err := writeCollection(path, []T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	return records, nil
}

// writeCollection serializes the whole collection and overwrites the file.
// Not atomic: a crash mid-write can corrupt the file.
func writeCollection[T any](path string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", path, err)
	}
	return nil
}
