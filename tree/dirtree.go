package tree

import (
	"os"
	"path/filepath"
)

// DirTree is a Tree backed by an OS directory. The CLI uses it to apply
// schematics to a workspace on disk.
type DirTree struct {
	root string
}

var _ Tree = (*DirTree)(nil)

// NewDirTree creates a tree rooted at the given OS directory.
func NewDirTree(root string) *DirTree {
	return &DirTree{root: root}
}

func (t *DirTree) osPath(path string) string {
	return filepath.Join(t.root, filepath.FromSlash(Normalize(path)))
}

func (t *DirTree) Exists(path string) bool {
	info, err := os.Stat(t.osPath(path))
	return err == nil && !info.IsDir()
}

func (t *DirTree) Read(path string) ([]byte, error) {
	return os.ReadFile(t.osPath(path))
}

func (t *DirTree) Write(path string, data []byte) error {
	p := t.osPath(path)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func (t *DirTree) Delete(path string) error {
	return os.Remove(t.osPath(path))
}

func (t *DirTree) ListDir(dir string) (files []string, dirs []string) {
	entries, err := os.ReadDir(t.osPath(dir))
	if err != nil {
		return nil, nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	return files, dirs
}
