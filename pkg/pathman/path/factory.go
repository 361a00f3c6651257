package path

import (
	"math/rand/v2"

	"github.com/ImGajeed76/pathman/internal/util"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

// Factory builds entities over one backend and owns the base URL / base path pair
// used for URL conversion. A Factory is not safe for concurrent reconfiguration.
type Factory struct {
	fs         pathmodels.FileSystem
	normalizer *Normalizer
	log        util.Logger
	intN       func(n int) int
}

type Option func(*Factory)

func WithLogger(logger util.Logger) Option {
	return func(f *Factory) {
		f.log = logger
	}
}

// WithRand replaces the source of the random suffixes used by MakeUnique.
// intN must return a value in [0, n).
func WithRand(intN func(n int) int) Option {
	return func(f *Factory) {
		f.intN = intN
	}
}

func NewFactory(fsys pathmodels.FileSystem, opts ...Option) *Factory {
	f := &Factory{
		fs:         fsys,
		normalizer: NewNormalizer(fsys.Separator()),
		log:        util.GetLogger("path"),
		intN:       rand.IntN,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init sets the base pair. It may be called again to reconfigure.
func (f *Factory) Init(baseURL, basePath string) {
	f.normalizer.Configure(baseURL, basePath)
	f.log.Debug().Str("base_url", baseURL).Str("base_path", basePath).Msg("Base pair configured")
}

func (f *Factory) Normalizer() *Normalizer {
	return f.normalizer
}

func (f *Factory) FileSystem() pathmodels.FileSystem {
	return f.fs
}

// Make turns a path or a local URL into an entity.
//
// A string containing the base URL is first converted to a path. Then an existing
// directory becomes a Directory, an existing file becomes a File, and anything else
// becomes a File only when its last segment has an extension.
func (f *Factory) Make(raw string) (Entity, error) {
	local, err := f.normalizer.IsLocalURL(raw)
	if err != nil {
		return nil, err
	}

	p := raw
	if local {
		if p, err = f.normalizer.URLToPath(raw); err != nil {
			return nil, err
		}
	}

	return f.classify(p)
}

// MakeFromBase is Make applied to the base path.
func (f *Factory) MakeFromBase() (Entity, error) {
	basePath, err := f.normalizer.BasePath()
	if err != nil {
		return nil, err
	}
	return f.Make(basePath)
}

func (f *Factory) classify(raw string) (Entity, error) {
	p := f.normalizer.Normalize(raw)

	switch {
	case p == "":
		// most backends resolve "" to the working directory or the root
	case f.fs.IsDir(p):
		return f.Directory(p), nil
	case f.fs.IsFile(p):
		return f.File(p), nil
	case splitPathInfo(p, f.fs.Separator()).hasExt:
		return f.File(p), nil
	}

	f.log.Debug().Str("path", raw).Msg("Cannot classify path")
	return nil, &pathmodels.PathError{Op: "make", Path: raw, Err: pathmodels.ErrInvalidPath}
}

// File returns a file entity for raw without looking at the backend.
func (f *Factory) File(raw string) *File {
	return &File{base{path: f.normalizer.Normalize(raw), factory: f}}
}

// Directory returns a directory entity for raw without looking at the backend.
func (f *Factory) Directory(raw string) *Directory {
	return &Directory{base{path: f.normalizer.Normalize(raw), factory: f}}
}
