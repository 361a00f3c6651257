package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ImGajeed76/pathman/internal/cli"
)

const (
	cmdName = "pathman"

	shortDesc = "Manage files and directories by path or public URL."
	longDesc  = `pathman copies, moves, deletes and creates files and directory trees.

Arguments may be filesystem paths or URLs under the configured base URL; URLs are
mapped onto the base path before anything touches the filesystem. The filesystem
is the local disk by default, an in-memory overlay with --memory, or a remote host
over SFTP when the settings file selects it.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
