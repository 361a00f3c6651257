package cli

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ImGajeed76/pathman/internal/util"
	constants "github.com/ImGajeed76/pathman/pkg"
	"github.com/ImGajeed76/pathman/pkg/pathman/config"
	"github.com/ImGajeed76/pathman/pkg/pathman/path"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
	pathlocal "github.com/ImGajeed76/pathman/pkg/pathman/path/operations/local"
	pathmemfs "github.com/ImGajeed76/pathman/pkg/pathman/path/operations/memfs"
	pathsftp "github.com/ImGajeed76/pathman/pkg/pathman/path/operations/sftp"
	sftpmanager "github.com/ImGajeed76/pathman/pkg/pathman/sftp"
)

// KeyringService namespaces the values pathman keeps in the system keyring.
const KeyringService = "pathman"

var ErrInvalidArgument = errors.New("invalid argument")

// annotationNoBackend marks commands, and their subcommands, that never touch a
// filesystem.
const annotationNoBackend = "pathman/no-backend"

// app is the state shared by the subcommands of one root command.
type app struct {
	settings *config.Settings
	factory  *path.Factory
	prompter Prompter
	closeFn  func()
}

type Option func(*app)

// WithPrompter replaces the terminal prompts.
func WithPrompter(p Prompter) Option {
	return func(a *app) {
		a.prompter = p
	}
}

func NewRootCmd(name, shortDesc, longDesc string, opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       constants.Version,
	}

	cmd.PersistentFlags().String("config", "", "Read settings from this YAML file")
	cmd.PersistentFlags().String("base-url", "", "Public URL that the base path is served under")
	cmd.PersistentFlags().String("base-path", "", "Directory that the base URL maps to")
	cmd.PersistentFlags().Bool("memory", false, "Keep every change in memory instead of writing to disk")
	cmd.PersistentFlags().String("log-level", "", "Set the log level (trace, debug, info, warn, error)")

	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}
	if err := cmd.MarkPersistentFlagDirname("base-path"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		if a.prompter == nil {
			a.prompter = &terminalPrompter{in: cc.InOrStdin(), out: cc.ErrOrStderr()}
		}
		return a.setup(cc)
	}
	cmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if a.closeFn != nil {
			a.closeFn()
		}
	}

	cmd.AddCommand(NewResolveCmd(a))
	cmd.AddCommand(NewURLCmd(a))
	cmd.AddCommand(NewPathCmd(a))
	cmd.AddCommand(NewCopyCmd(a))
	cmd.AddCommand(NewMoveCmd(a))
	cmd.AddCommand(NewRemoveCmd(a))
	cmd.AddCommand(NewMkdirCmd(a))
	cmd.AddCommand(NewUniqueCmd(a))
	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewConfigCmd(a))
	cmd.AddCommand(NewVersionCmd(name))

	return cmd
}

// setup loads the settings, applies the flags on top and opens the backend.
func (a *app) setup(cc *cobra.Command) error {
	var merr error

	flags := cc.Flags()
	configFile, err := flags.GetString("config")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	memory, err := flags.GetBool("memory")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	override := &config.SettingsOverride{}
	for flag, dst := range map[string]**string{
		"base-url":  &override.BaseURL,
		"base-path": &override.BasePath,
		"log-level": &override.LogLevel,
	} {
		if !flags.Changed(flag) {
			continue
		}
		value, err := flags.GetString(flag)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		*dst = util.Pointer(value)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	settings, err := config.LoadSettings(configFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Merge(override)
	if memory {
		settings.Backend = config.BackendMemory
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	util.InitializeLogger(settings.Level(), cc.ErrOrStderr())
	a.settings = settings
	if !needsBackend(cc) {
		return nil
	}

	store, err := config.NewStore(KeyringService)
	if err != nil {
		return err
	}
	store.ApplyBasePair(settings)

	fsys, err := a.openBackend(cc, store)
	if err != nil {
		return err
	}

	a.factory = path.NewFactory(fsys, path.WithLogger(util.GetLogger("factory")))
	a.factory.Init(settings.BaseURL, settings.BasePath)
	return nil
}

func needsBackend(cc *cobra.Command) bool {
	for c := cc; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoBackend] == "true" {
			return false
		}
	}
	return true
}

func (a *app) openBackend(cc *cobra.Command, store *config.Store) (pathmodels.FileSystem, error) {
	switch a.settings.Backend {
	case config.BackendMemory:
		return pathmemfs.NewOverlay(), nil
	case config.BackendSFTP:
		details := a.settings.SFTP.ConnectionDetails(store.Get(config.KeySFTPPassword))
		fsys, err := pathsftp.Dial(cc.Context(), details)
		if err != nil {
			return nil, err
		}
		a.closeFn = sftpmanager.GetGlobalManager().Close
		return fsys, nil
	default:
		return pathlocal.New(), nil
	}
}

// localPath converts a local URL into a path and returns anything else unchanged.
func (a *app) localPath(raw string) (string, error) {
	n := a.factory.Normalizer()
	local, err := n.IsLocalURL(raw)
	if err != nil {
		return "", err
	}
	if !local {
		return raw, nil
	}
	return n.URLToPath(raw)
}

// targetFor names raw as an entity of the same kind as src.
func (a *app) targetFor(src path.Entity, raw string) (path.Entity, error) {
	p, err := a.localPath(raw)
	if err != nil {
		return nil, err
	}
	if src.Kind() == path.KindDirectory {
		return a.factory.Directory(p), nil
	}
	return a.factory.File(p), nil
}
