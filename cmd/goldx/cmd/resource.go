package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldenacre/extensions/internal/assets"
	"github.com/goldenacre/extensions/utils/resx"
)

func newResourceCmd(a *app) *cobra.Command {
	var (
		dir      string
		list     bool
		strict   bool
		sizeOnly bool
	)

	c := &cobra.Command{
		Use:   "resource [file-name]",
		Short: "Look up a bundled resource by its file name",
		Long: `Resolve a short file name such as "goldx.toml" against the resource
catalog, ignoring case, and print the content as text. The catalog is the
embedded goldx resources, or the files below --dir. Catalog names start with
resources.prefix.`,
		Example: `  goldx resource --list
  goldx resource SAMPLE.TXT
  goldx resource --dir ./assets logo.png --size`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := resourceProvider(dir, a.settings.ResourcePrefix)
			if err != nil {
				return err
			}

			bundle, err := resx.NewBundle(provider, strict)
			if err != nil {
				return err
			}
			bundle = bundle.WithLogger(a.logger)

			out := cmd.OutOrStdout()
			st := newStyles(out)

			if list || len(args) == 0 {
				for _, name := range bundle.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			data, ok, err := bundle.Bytes(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), newStyles(cmd.ErrOrStderr()).muted.Render(
					fmt.Sprintf("no resource matches %q", args[0])))
				return nil
			}

			if sizeOnly {
				name, _ := bundle.Find(args[0])
				fmt.Fprintln(out, st.label.Render("bytes"), len(data), st.muted.Render(name))
				return nil
			}

			text, err := resx.DecodeText(data)
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", "", "directory to build the catalog from instead of the embedded resources")
	c.Flags().BoolVar(&list, "list", false, "print the catalog")
	c.Flags().BoolVar(&strict, "strict", false, "fail when the name is blank or unresolved")
	c.Flags().BoolVar(&sizeOnly, "size", false, "print the size and full name instead of the content")
	return c
}

func resourceProvider(dir, prefix string) (resx.Provider, error) {
	if dir == "" {
		p, err := assets.Provider(prefix)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	p, err := resx.NewFSProvider(os.DirFS(dir), prefix)
	if err != nil {
		return nil, err
	}
	return p, nil
}
