package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldenacre/extensions/core/errors"
	"github.com/goldenacre/extensions/utils/stringx"
)

func newPascalCmd(a *app) *cobra.Command {
	var (
		ignore []string
		title  bool
	)

	c := &cobra.Command{
		Use:   "pascal <text>...",
		Short: "Capitalize every word, keeping a, and, the, to lower case",
		Long: `Capitalize every word of the text. Words listed with --ignore or in
text.pascal_ignore are left untouched. With --title the language rules of
text.culture are used instead.`,
		Example: `  goldx pascal "the quick BROWN fox" --ignore BROWN`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			if title {
				caser, err := stringx.NewLanguageCaser(a.settings.Culture)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, stringx.ToTitleCaseWith(text, caser))
				return nil
			}

			words := append(slices.Clone(a.settings.PascalIgnore), ignore...)
			fmt.Fprintln(out, stringx.ToPascalCase(text, words...))
			return nil
		},
	}

	c.Flags().StringSliceVar(&ignore, "ignore", nil, "words to leave unchanged")
	c.Flags().BoolVar(&title, "title", false, "title-case with the rules of text.culture")
	return c
}

func newSplitCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "split-caps <text>",
		Short:   "Insert spaces before capital letters",
		Example: `  goldx split-caps HelloWorldFoo`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), stringx.SplitOnCapitals(strings.Join(args, " ")))
		},
	}
}

func newWhitespaceCmd() *cobra.Command {
	var removeAll bool

	c := &cobra.Command{
		Use:   "whitespace <text>",
		Short: "Trim and collapse spaces and tabs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := stringx.TrimAndCollapseWhitespace(args[0])
			if removeAll {
				result = stringx.RemoveAllWhitespace(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	c.Flags().BoolVar(&removeAll, "remove-all", false, "remove every space and tab instead")
	return c
}

func newSniffCmd() *cobra.Command {
	var useUUID bool

	c := &cobra.Command{
		Use:   "sniff <value>",
		Short: "Report whether a value looks numeric, like a date or like a GUID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			st := newStyles(out)
			value := args[0]

			guid := stringx.RegexGUIDMatcher
			if useUUID {
				guid = stringx.UUIDMatcher
			}

			fmt.Fprintln(out, st.label.Render("numeric"), st.bool(stringx.IsNumeric(value)))
			fmt.Fprintln(out, st.label.Render("date"), st.bool(stringx.IsDate(value)))
			fmt.Fprintln(out, st.label.Render("guid"), st.bool(stringx.IsGUIDWith(value, guid)))
		},
	}

	c.Flags().BoolVar(&useUUID, "uuid", false, "check GUIDs with the uuid parser instead of the pattern")
	return c
}

func newTruthyCmd(a *app) *cobra.Command {
	var words string

	c := &cobra.Command{
		Use:   "truthy <value>...",
		Short: "Interpret values as booleans",
		Long: `Interpret each value as a boolean. Numbers are true when greater than
zero; other values are true when they are one of text.truthy_words.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			st := newStyles(out)

			truthy := stringx.TruthyWords(a.settings.TruthyWords)
			if words != "" {
				truthy = stringx.ParseTruthyWords(words)
			}

			for _, v := range args {
				fmt.Fprintf(out, "%s\t%s\n", v, st.bool(stringx.IsTruthyWith(v, truthy)))
			}
		},
	}

	c.Flags().StringVar(&words, "words", "", "comma separated truthy words, replacing text.truthy_words")
	return c
}

func newNthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "nth <text> <needle> <n>",
		Short:   "Print the index of the n-th occurrence of needle, ignoring case",
		Example: `  goldx nth "a-b-c-d" - 2`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.StringxInvalidInput("nth_index_of", args[2], "integer occurrence")
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.NthIndexOf(args[0], args[1], n))
			return nil
		},
	}
}
