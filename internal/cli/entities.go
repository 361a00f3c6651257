package cli

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ImGajeed76/pathman/pkg/pathman/path"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

func NewResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path|url>...",
		Short: "Print the kind, path and URL of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error
			for _, raw := range args {
				entity, err := a.factory.Make(raw)
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}
				url, err := entity.ToURL()
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}
				fmt.Fprintf(cc.OutOrStdout(), "%s\t%s\t%s\n", entity.Kind(), entity.Path(), url)
			}
			return merr
		},
	}
}

func NewURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "url <path>...",
		Short: "Convert paths to URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return convertEach(cc, args, a.factory.Normalizer().PathToURL)
		},
	}
}

func NewPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <url>...",
		Short: "Convert URLs to paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return convertEach(cc, args, a.factory.Normalizer().URLToPath)
		},
	}
}

func convertEach(cc *cobra.Command, args []string, convert func(string) (string, error)) error {
	var merr error
	for _, raw := range args {
		converted, err := convert(raw)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		fmt.Fprintln(cc.OutOrStdout(), converted)
	}
	return merr
}

func NewUniqueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unique <path|url>",
		Short: "Print a variant of the path that does not exist yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			entity, err := a.factory.Make(args[0])
			if err != nil {
				return err
			}
			entity.MakeUnique()
			fmt.Fprintln(cc.OutOrStdout(), entity.Path())
			return nil
		},
	}
}

func NewListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls <dir>",
		Aliases: []string{"list"},
		Short:   "List the direct children of a directory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			entity, err := a.factory.Make(args[0])
			if err != nil {
				return err
			}
			dir, ok := entity.(*path.Directory)
			if !ok {
				return &pathmodels.PathError{Op: "ls", Path: entity.Path(), Err: pathmodels.ErrNotADirectory}
			}

			children, err := dir.Children()
			if err != nil {
				return err
			}
			sort.Slice(children, func(i, j int) bool {
				return children[i].Path() < children[j].Path()
			})

			for _, child := range children {
				name := child.PathInfo(pathmodels.InfoBasename)
				if child.Kind() == path.KindDirectory {
					name += "/"
				}
				fmt.Fprintln(cc.OutOrStdout(), name)
			}
			return nil
		},
	}
}
