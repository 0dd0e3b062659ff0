// Package tree provides the virtual file tree the schematic rules operate on.
//
// A Tree is an externally supplied capability: the schematic runner owns it for the
// duration of one run and every rule receives it by reference. Two implementations
// are provided, an in-memory tree for scaffolding runs and tests, and an OS
// directory backed tree for the CLI.
package tree

// Tree is a mutable virtual file tree.
//
// Paths are normalized to a rooted form (see Normalize) so "/angular.json" and
// "angular.json" address the same entry.
type Tree interface {
	// Exists reports whether a file exists at path.
	Exists(path string) bool
	// Read returns the contents of the file at path, or an error satisfying
	// errors.Is(err, fs.ErrNotExist) when the file is absent.
	Read(path string) ([]byte, error)
	// Write creates the file at path or overwrites its current contents.
	Write(path string, data []byte) error
	// Delete removes the file at path.
	Delete(path string) error
	// ListDir returns the names of the files and subdirectories directly inside dir.
	ListDir(dir string) (files []string, dirs []string)
}

// ListFiles returns the full paths of every file directly inside dir, and, when
// recursive, of every file in any subdirectory below it. Order is whatever the
// tree's directory listing yields.
func ListFiles(t Tree, dir string, recursive bool) []string {
	files, dirs := t.ListDir(dir)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, Join(dir, f))
	}

	if recursive {
		for _, d := range dirs {
			paths = append(paths, ListFiles(t, Join(dir, d), true)...)
		}
	}

	return paths
}
