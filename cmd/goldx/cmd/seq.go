package cmd

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldenacre/extensions/core/log"
	"github.com/goldenacre/extensions/utils/slicex"
)

// items yields args, or the non-blank lines of in when there are no args.
// The returned func reports a read error once the sequence is drained.
func items(in io.Reader, args []string) (iter.Seq[string], func() error) {
	if len(args) > 0 {
		return slices.Values(args), func() error { return nil }
	}

	scanner := bufio.NewScanner(in)
	seq := func(yield func(string) bool) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
	return seq, scanner.Err
}

func newBatchCmd(a *app) *cobra.Command {
	var size int

	c := &cobra.Command{
		Use:   "batch [item]...",
		Short: "Group items into batches of a fixed size",
		Long: `Group items into batches of --size, one batch per line. Without
arguments the items are read line by line from stdin, and each batch is
printed as soon as it is full.`,
		Example: `  seq 1 10 | goldx batch --size 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, readErr := items(cmd.InOrStdin(), args)

			batches, err := slicex.Batch(seq, size)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = slicex.ForEachIndexed(batches, func(i int, batch iter.Seq[string]) {
				values := slices.Collect(batch)
				a.logger.Trace("batch", log.Fields{"index": i, "size": len(values)})
				fmt.Fprintln(out, strings.Join(values, " "))
			})
			if err != nil {
				return err
			}
			return readErr()
		},
	}

	c.Flags().IntVar(&size, "size", 10, "items per batch")
	return c
}

func newDistinctCmd(a *app) *cobra.Command {
	var ignoreCase bool

	c := &cobra.Command{
		Use:   "distinct [item]...",
		Short: "Drop repeated items, keeping the first occurrence",
		Long: `Print each item once, in the order of first occurrence. Without
arguments the items are read line by line from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, readErr := items(cmd.InOrStdin(), args)

			key := func(s string) string { return s }
			if ignoreCase {
				key = strings.ToLower
			}

			unique, err := slicex.DistinctBy(seq, key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			count := 0
			err = slicex.ForEach(unique, func(s string) {
				count++
				fmt.Fprintln(out, s)
			})
			if err != nil {
				return err
			}

			a.logger.Debug("distinct done", log.Int("unique", count))
			return readErr()
		},
	}

	c.Flags().BoolVar(&ignoreCase, "ignore-case", false, "treat items differing only in case as equal")
	return c
}
