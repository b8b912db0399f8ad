package uploads

import (
	"fmt"
	"os"
	"path/filepath"
)

const storageDir = "pharm-docs"

// DiskSink writes upload payloads under <root>/pharm-docs/<pharmacy uuid>/,
// creating the directory on first use.
type DiskSink struct {
	root string
}

func NewDiskSink(root string) *DiskSink {
	return &DiskSink{
		root: root,
	}
}

func (s *DiskSink) Store(pharmUUID string, filename string, content []byte) (string, error) {
	dir := filepath.Join(s.root, storageDir, pharmUUID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage location: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path, nil
}
