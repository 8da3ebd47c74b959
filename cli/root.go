// Package cli wires loaded's command tree: a run command carrying the
// shared run configuration, with the simple and s3 engines as its
// subcommands, built with cobra the way the rest of the retrieved S3
// load-testing tooling (paraggit's s3bench, BeLuckyDaf's hsbench) builds
// its command trees. See DESIGN.md.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds loaded's full command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "loaded",
		Short:        "A tool to generate http traffic to a server 'til it's absolutely loaded",
		SilenceUsage: true,
	}

	root.AddCommand(newRunCommand())
	return root
}

// Execute runs loaded's command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
