package pathmodels

// FileSystem is the set of blocking primitives the path entities are built on.
// Paths handed to a FileSystem are already normalized with its Separator.
type FileSystem interface {
	// Separator is the canonical path separator of the backend.
	Separator() byte

	Exists(path string) bool
	IsDir(path string) bool
	IsFile(path string) bool

	// List returns the names (not paths) of the direct children of a directory.
	List(path string) ([]string, error)

	// MakeDir creates a single directory. The parent must exist.
	MakeDir(path string, perm FileMode) error
	// RemoveDir removes an empty directory.
	RemoveDir(path string) error
	// Remove removes a single file.
	Remove(path string) error
	// CopyFile copies the bytes of src to dst, replacing dst if it exists.
	CopyFile(src, dst string) error
	Rename(src, dst string) error

	// Abs resolves path against the backend's working directory.
	Abs(path string) (string, error)

	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm FileMode) error
}
