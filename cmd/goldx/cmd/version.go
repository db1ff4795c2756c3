package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goldenacre/extensions/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			st := newStyles(out)
			info := version.Get()

			fmt.Fprintln(out, st.title.Render("goldx v"+info.Version))
			fmt.Fprintln(out, st.label.Render("commit"), info.GitCommit)
			fmt.Fprintln(out, st.label.Render("built"), info.BuildDate)
			fmt.Fprintln(out, st.label.Render("go"), info.GoVersion)
			fmt.Fprintln(out, st.label.Render("platform"), info.Platform)
		},
	}
}
