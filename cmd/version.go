package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/tldextract/util"
)

// NewVersionCommand creates new command instance
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "Print the version number of tldextract",
		Run:   printVersion,
	}
}

func printVersion(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "tldextract")
	fmt.Fprintf(out, "Version: %s\n", util.Version)
	fmt.Fprintf(out, "Build time: %s\n", util.BuildTime)
	fmt.Fprintf(out, "Architecture: %s\n", util.Architecture)
}
