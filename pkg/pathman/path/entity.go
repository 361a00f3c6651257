// Package path models filesystem locations as File and Directory entities that carry
// their own copy, move, delete and creation semantics, and maps them to and from a
// public URL namespace.
package path

import (
	"fmt"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

type Kind int

const (
	KindFile Kind = iota + 1
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entity is a file or directory location. The set of implementations is closed:
// *File and *Directory.
//
// Operations check the current state of the backend at call time, so an entity may
// name something that does not exist yet.
type Entity interface {
	fmt.Stringer

	Path() string
	Kind() Kind
	Exists() bool

	Copy(target Entity) error
	Move(target Entity) error
	Delete() error
	EnsureExists(mode pathmodels.FileMode) error
	MakeUnique()

	ToURL() (string, error)
	ParentDirectory() *Directory
	PathInfo(key pathmodels.InfoKey) string

	isEntity()
}

// base holds what both variants share: the normalized path and the owning factory.
type base struct {
	path    string
	factory *Factory
}

func (b *base) isEntity() {}

func (b *base) Path() string {
	return b.path
}

func (b *base) String() string {
	return b.path
}

func (b *base) Exists() bool {
	return b.fs().Exists(b.path)
}

func (b *base) ToURL() (string, error) {
	return b.factory.normalizer.PathToURL(b.path)
}

func (b *base) ParentDirectory() *Directory {
	return b.factory.Directory(b.info().dirname)
}

func (b *base) PathInfo(key pathmodels.InfoKey) string {
	info := b.info()
	switch key {
	case pathmodels.InfoDirname:
		return info.dirname
	case pathmodels.InfoBasename:
		return info.basename
	case pathmodels.InfoExtension:
		return info.extension
	case pathmodels.InfoFilename:
		return info.filename
	default:
		return ""
	}
}

func (b *base) info() pathInfo {
	return splitPathInfo(b.path, b.sep())
}

func (b *base) fs() pathmodels.FileSystem {
	return b.factory.fs
}

func (b *base) sep() byte {
	return b.factory.fs.Separator()
}

// join appends a child name to dir without doubling the separator at the root.
func (b *base) join(dir, name string) string {
	if dir != "" && dir[len(dir)-1] == b.sep() {
		return dir + name
	}
	return dir + string(b.sep()) + name
}
