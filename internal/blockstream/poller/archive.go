package poller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DiskArchiver writes raw block files to <root>/<node id>/<filename>.
type DiskArchiver struct {
	root string
}

// NewDiskArchiver creates a DiskArchiver rooted at root.
func NewDiskArchiver(root string) (*DiskArchiver, error) {
	if root == "" {
		return nil, errors.New("archive directory is required")
	}
	return &DiskArchiver{root: root}, nil
}

// Archive writes data atomically: readers never observe a partial file.
func (a *DiskArchiver) Archive(filename string, nodeID int64, data []byte) error {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid filename %q", filename)
	}
	dir := filepath.Join(a.root, strconv.FormatInt(nodeID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}
