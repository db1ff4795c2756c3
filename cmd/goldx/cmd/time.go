package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goldenacre/extensions/utils/timex"
)

// parseDateArg parses args[0], or returns the current local time without
// arguments
func parseDateArg(args []string) (timex.DateTime, error) {
	if len(args) == 0 {
		return timex.Local(time.Now()), nil
	}
	return timex.ParseDateTime(strings.Join(args, " "))
}

func newNiceDateCmd() *cobra.Command {
	var (
		withTime bool
		utc      bool
	)

	c := &cobra.Command{
		Use:     "nice-date [date]",
		Short:   `Format a date as "Thu 1st Jan 2015"`,
		Example: `  goldx nice-date 2015-01-01T13:34:00Z --time`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg(args)
			if err != nil {
				return err
			}
			if utc {
				d = timex.UTC(timex.EnsureUTC(d))
			}

			if withTime {
				fmt.Fprintln(cmd.OutOrStdout(), timex.ToNiceDateTimeString(d))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), timex.ToNiceDateString(d))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&withTime, "time", false, "append hours and minutes")
	c.Flags().BoolVar(&utc, "utc", false, "convert to UTC before formatting")
	return c
}

func newUnixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unix <timestamp|date>",
		Short: "Convert between unix timestamps and dates",
		Long: `Convert a unix timestamp (whole seconds) to a UTC date, or a date to a
unix timestamp. Dates without a zone are read as UTC.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyles(out)
			value := strings.Join(args, " ")

			if sec, err := strconv.ParseInt(value, 10, 64); err == nil {
				d := timex.FromUnixTimestamp(sec)
				fmt.Fprintln(out, st.label.Render("utc"), d.String())
				fmt.Fprintln(out, st.label.Render("nice"), timex.ToNiceDateTimeString(d))
				return nil
			}

			d, err := timex.ParseDateTime(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, st.label.Render("unix"), timex.ToUnixTimestamp(d))
			fmt.Fprintln(out, st.label.Render("kind"), d.Kind())
			return nil
		},
	}
}

func newWeekendCmd() *cobra.Command {
	var zone string

	c := &cobra.Command{
		Use:     "weekend [date]",
		Short:   "Tell whether a date falls on a weekend",
		Example: `  goldx weekend 2015-01-03 --zone Australia/Sydney`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg(args)
			if err != nil {
				return err
			}

			loc, err := timex.LoadLocation(zone)
			if err != nil {
				return err
			}

			st := newStyles(cmd.OutOrStdout())
			if timex.IsWeekend(d, loc) {
				fmt.Fprintln(cmd.OutOrStdout(), st.ok.Render("weekend"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), st.muted.Render("weekday"))
			}
			return nil
		},
	}

	c.Flags().StringVar(&zone, "zone", "Local", "IANA time zone the day is judged in")
	return c
}
