package cli

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ImGajeed76/pathman/pkg/pathman/console"
	"github.com/ImGajeed76/pathman/pkg/pathman/path"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

func NewCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cp <src> <dst>",
		Short: "Copy a file or a directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			src, dst, err := a.pair(args[0], args[1])
			if err != nil {
				return err
			}
			if err := src.Copy(dst); err != nil {
				return fmt.Errorf("copy failed: %w", err)
			}
			return nil
		},
	}
}

func NewMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <src> <dst>",
		Short: "Move a file, or a directory onto an existing directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			src, dst, err := a.pair(args[0], args[1])
			if err != nil {
				return err
			}
			if err := src.Move(dst); err != nil {
				return fmt.Errorf("move failed: %w", err)
			}
			return nil
		},
	}
}

// pair resolves a source entity and a destination of the same kind.
func (a *app) pair(rawSrc, rawDst string) (path.Entity, path.Entity, error) {
	src, err := a.factory.Make(rawSrc)
	if err != nil {
		return nil, nil, err
	}
	dst, err := a.targetFor(src, rawDst)
	if err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

func NewRemoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <path|url>...",
		Short: "Delete files and directory trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			yes, err := cc.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			var merr error
			entities := make([]path.Entity, 0, len(args))
			for _, raw := range args {
				entity, err := a.factory.Make(raw)
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}
				entities = append(entities, entity)
			}
			if merr != nil {
				return merr
			}

			if !yes {
				ok, err := a.prompter.Confirm(fmt.Sprintf("Delete %d entries?", len(entities)), confirmEntries(entities))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cc.ErrOrStderr(), "aborted")
					return nil
				}
			}

			for _, entity := range entities {
				if err := entity.Delete(); err != nil {
					merr = multierror.Append(merr, err)
				}
			}
			return merr
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func confirmEntries(entities []path.Entity) []console.Entry {
	entries := make([]console.Entry, 0, len(entities))
	for _, entity := range entities {
		entries = append(entries, console.Entry{Path: entity.Path(), Dir: entity.Kind() == path.KindDirectory})
	}
	return entries
}

func NewMkdirCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <path|url>...",
		Short: "Create directories together with their missing parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			modeFlag, err := cc.Flags().GetString("mode")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			mode, err := strconv.ParseUint(modeFlag, 8, 32)
			if err != nil {
				return fmt.Errorf("%w: mode %q: %w", ErrInvalidArgument, modeFlag, err)
			}

			var merr error
			for _, raw := range args {
				p, err := a.localPath(raw)
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}
				if err := a.factory.Directory(p).EnsureExists(pathmodels.FileMode(mode)); err != nil {
					merr = multierror.Append(merr, err)
				}
			}
			return merr
		},
	}

	cmd.Flags().StringP("mode", "m", "0755", "Permission bits, in octal, for created directories")

	return cmd
}
