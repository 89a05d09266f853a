package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Normalise typed times without opening a picker",
	Long: `Print each argument as a 24-hour HH:MM (or HH:MM:SS with --seconds). Arguments
that cannot be read, or that the configured rules do not allow, are errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pickerOptions(cmd)
		if err != nil {
			return err
		}
		picker := core.NewTimePicker(opts)
		now := time.Now()
		for _, arg := range args {
			t := core.ResolveInput(arg, now)
			if t.IsZero() {
				return fmt.Errorf("cannot read %q as a time", arg)
			}
			if !picker.Accepts(t) {
				return fmt.Errorf("%q is not an allowed time", arg)
			}
			if !opts.UseSeconds {
				t.Second = core.Unset()
			} else if !t.Second.Valid {
				t.Second = core.Of(0)
			}
			text, ok := core.FormatTime(t, opts.UseSeconds)
			if !ok {
				return fmt.Errorf("cannot read %q as a time", arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
