package path

import (
	"strconv"
	"strings"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

type Directory struct {
	base
}

var _ Entity = (*Directory)(nil)

func (d *Directory) Kind() Kind {
	return KindDirectory
}

// Copy recreates the tree rooted at d under the target path. Missing directories are
// created with DefaultMode, existing files are overwritten.
//
// The absolute target path is resolved once before descending and any source entry
// that resolves to it is skipped, so copying a directory into one of its own direct
// children does not copy the destination into itself.
func (d *Directory) Copy(target Entity) error {
	if err := d.requireDir("copy", d.path); err != nil {
		return err
	}

	guard, err := d.fs().Abs(target.Path())
	if err != nil {
		return err
	}
	srcAbs, err := d.fs().Abs(d.path)
	if err != nil {
		return err
	}

	d.factory.log.Debug().Str("src", d.path).Str("dst", target.Path()).Msg("Copying directory")
	return d.copyTree(d.path, srcAbs, target.Path(), guard)
}

func (d *Directory) copyTree(src, srcAbs, dst, guard string) error {
	if !d.fs().Exists(dst) {
		if err := d.fs().MakeDir(dst, pathmodels.DefaultMode); err != nil {
			return err
		}
	}

	names, err := d.fs().List(src)
	if err != nil {
		return err
	}

	for _, name := range names {
		child, childAbs := d.join(src, name), d.join(srcAbs, name)
		if childAbs == guard {
			d.factory.log.Trace().Str("path", child).Msg("Skipping copy destination")
			continue
		}

		childDst := d.join(dst, name)
		if d.fs().IsDir(child) {
			if err := d.copyTree(child, childAbs, childDst, guard); err != nil {
				return err
			}
			continue
		}
		if err := d.fs().CopyFile(child, childDst); err != nil {
			return err
		}
	}

	return nil
}

// Move renames the directory onto the target. Both sides must currently be
// directories; the backend decides whether an existing target may be replaced.
func (d *Directory) Move(target Entity) error {
	if err := d.requireDir("move", d.path); err != nil {
		return err
	}
	if err := d.requireDir("move", target.Path()); err != nil {
		return err
	}
	d.factory.log.Debug().Str("src", d.path).Str("dst", target.Path()).Msg("Moving directory")
	return d.fs().Rename(d.path, target.Path())
}

// Delete removes every descendant, children before their parents, then the directory
// itself. It stops at the first failure.
func (d *Directory) Delete() error {
	if err := d.requireDir("delete", d.path); err != nil {
		return err
	}
	d.factory.log.Debug().Str("path", d.path).Msg("Deleting directory")
	return d.removeTree(d.path)
}

func (d *Directory) removeTree(dir string) error {
	names, err := d.fs().List(dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		child := d.join(dir, name)
		if d.fs().IsDir(child) {
			if err := d.removeTree(child); err != nil {
				return err
			}
			continue
		}
		if err := d.fs().Remove(child); err != nil {
			return err
		}
	}

	return d.fs().RemoveDir(dir)
}

// EnsureExists creates every missing directory on the path, outermost first.
func (d *Directory) EnsureExists(mode pathmodels.FileMode) error {
	sep := string(d.sep())

	current := ""
	for i, segment := range strings.Split(d.path, sep) {
		if segment == "" {
			if i == 0 {
				current = sep
			}
			continue
		}

		if current == "" {
			current = segment
		} else {
			current = d.join(current, segment)
		}

		if d.fs().Exists(current) {
			continue
		}
		d.factory.log.Trace().Str("path", current).Msg("Creating directory")
		if err := d.fs().MakeDir(current, mode); err != nil {
			return err
		}
	}

	return nil
}

// MakeUnique appends random digits to the path until it no longer exists.
func (d *Directory) MakeUnique() {
	for d.fs().Exists(d.path) {
		d.path += strconv.Itoa(d.factory.intN(11))
	}
}

// Children returns the direct children of the directory. Entries that are not
// directories are returned as files.
func (d *Directory) Children() ([]Entity, error) {
	if err := d.requireDir("children", d.path); err != nil {
		return nil, err
	}

	names, err := d.fs().List(d.path)
	if err != nil {
		return nil, err
	}

	children := make([]Entity, 0, len(names))
	for _, name := range names {
		child := d.join(d.path, name)
		if d.fs().IsDir(child) {
			children = append(children, d.factory.Directory(child))
		} else {
			children = append(children, d.factory.File(child))
		}
	}
	return children, nil
}

func (d *Directory) requireDir(op, p string) error {
	if p == "" || !d.fs().IsDir(p) {
		return &pathmodels.PathError{Op: op, Path: p, Err: pathmodels.ErrNotADirectory}
	}
	return nil
}
