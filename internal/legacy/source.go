// Package legacy wraps the legacy per-player on-disk record collaborator.
// It is read-only by contract: nothing in this package ever writes a record.
package legacy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RecordSource is the legacy record collaborator: an ordered directory of
// per-identity record files.
type RecordSource interface {
	// ListRecordKeys returns the identity keys with an on-disk record.
	ListRecordKeys() ([]string, error)
	// ReadRecord returns the raw record bytes for one identity key.
	ReadRecord(key string) ([]byte, error)
}

// DirSource reads legacy records from a directory of <key>.dat files, the
// layout the original server writes.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// ListRecordKeys lists the record files in the directory, stripped of the
// .dat extension.
func (s *DirSource) ListRecordKeys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy records: %w", err)
	}
	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, recordExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, recordExt))
	}
	return keys, nil
}

// ReadRecord reads one record file.
func (s *DirSource) ReadRecord(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, key+recordExt))
}

const recordExt = ".dat"
