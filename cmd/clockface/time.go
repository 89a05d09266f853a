package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/screens"
)

var timeCmd = &cobra.Command{
	Use:   "time [initial]",
	Short: "Pick a time of day",
	Long:  `Open the clock face. The initial value accepts 9:30pm, 14:05:10, noon or now.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pickerOptions(cmd)
		if err != nil {
			return err
		}
		picker := core.NewTimePicker(opts)
		if len(args) == 1 {
			t := core.ResolveInput(args[0], time.Now())
			if t.IsZero() {
				return fmt.Errorf("cannot read %q as a time", args[0])
			}
			picker.SetFields(t)
		}
		keys := newKeys()
		return runPicker(cmd, screens.NewTimeScreen(picker, keys, logger), keys, screens.KindTime)
	},
}

var dateTimeCmd = &cobra.Command{
	Use:   "datetime [initial]",
	Short: "Pick a date and a time",
	Long:  `Open a calendar next to the clock face. The initial value accepts 2024-03-09 14:30 or now.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pickerOptions(cmd)
		if err != nil {
			return err
		}
		now := time.Now()
		picker := core.NewDateTimePicker(now, opts)
		if len(args) == 1 {
			v, ok := screens.ParseDateTime(args[0], now)
			if !ok {
				return fmt.Errorf("cannot read %q as a date and time", args[0])
			}
			picker.SetValue(v)
		}
		keys := newKeys()
		return runPicker(cmd, screens.NewDateTimeScreen(picker, keys, logger), keys, screens.KindDateTime)
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(dateTimeCmd)
}
