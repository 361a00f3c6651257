package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	constants "github.com/ImGajeed76/pathman/pkg"
)

func NewVersionCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationNoBackend: "true",
		},
		RunE: func(cc *cobra.Command, _ []string) error {
			fmt.Fprintf(cc.OutOrStdout(), "%s %s (%s %s/%s)\n", name, constants.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
