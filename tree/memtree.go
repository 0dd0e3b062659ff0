package tree

import (
	"io/fs"
	"slices"
	"strings"
)

// MemTree is an in-memory Tree. It holds the state of one scaffolding run and is
// the fixture substrate for tests.
type MemTree struct {
	files map[string][]byte
}

var _ Tree = (*MemTree)(nil)

// NewMemTree creates an empty in-memory tree.
func NewMemTree() *MemTree {
	return &MemTree{files: map[string][]byte{}}
}

func (t *MemTree) Exists(path string) bool {
	_, ok := t.files[Normalize(path)]
	return ok
}

func (t *MemTree) Read(path string) ([]byte, error) {
	data, ok := t.files[Normalize(path)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (t *MemTree) Write(path string, data []byte) error {
	t.files[Normalize(path)] = data
	return nil
}

func (t *MemTree) Delete(path string) error {
	p := Normalize(path)
	if _, ok := t.files[p]; !ok {
		return &fs.PathError{Op: "delete", Path: path, Err: fs.ErrNotExist}
	}
	delete(t.files, p)
	return nil
}

func (t *MemTree) ListDir(dir string) (files []string, dirs []string) {
	prefix := Normalize(dir)
	if prefix != "/" {
		prefix += "/"
	}

	seenDirs := map[string]bool{}

	for p := range t.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}

		rest := p[len(prefix):]
		if name, sub, nested := strings.Cut(rest, "/"); nested {
			if !seenDirs[name] && sub != "" {
				seenDirs[name] = true
				dirs = append(dirs, name)
			}
		} else {
			files = append(files, name)
		}
	}

	slices.Sort(files)
	slices.Sort(dirs)

	return files, dirs
}
