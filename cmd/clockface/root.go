package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/config"
	"github.com/jask/clockface/internal/logging"
	"github.com/jask/clockface/internal/presets"
)

var (
	cfg      config.Config
	logger   = slog.New(slog.DiscardHandler)
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "clockface",
	Short: "Clock face time, date and colour pickers for the terminal",
	Long: `clockface opens a picker, waits for a value and prints it to stdout.

Pick an hour, then minutes (and seconds) on a clock face with the mouse, the
wheel or the keyboard. Allowed values come from the config file, a named
preset or flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, closeLog, err = logging.New(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return err
		}
		logger.Debug("start", "command", cmd.Name(), "args", args)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("format", "", "hour format: ampm or 24hr")
	f.Bool("seconds", false, "also pick seconds")
	f.String("min", "", "earliest allowed time, H:M[:S]")
	f.String("max", "", "latest allowed time, H:M[:S]")
	f.Int("minute-step", 0, "only allow minutes that are multiples of this")
	f.String("preset", "", "start from a named preset")
	f.Bool("keep-open", false, "stay open after a value is confirmed")
	f.Bool("no-history", false, "do not read or record history")
}

// pickerOptions merges config, an optional preset and flags, in that order.
func pickerOptions(cmd *cobra.Command) (core.TimePickerOptions, error) {
	pc := cfg.Picker
	rules := core.Rules{Minutes: core.AllowStep(pc.MinuteStep), Min: pc.Min, Max: pc.Max}

	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		list, err := presets.Load(cfg.Presets.Path)
		if err != nil {
			return core.TimePickerOptions{}, err
		}
		p, ok := presets.Find(list, name)
		if !ok {
			return core.TimePickerOptions{}, fmt.Errorf("no preset named %q", name)
		}
		rules = p.Rules()
		if p.Format != "" {
			pc.Format = p.Format
		}
		pc.UseSeconds = pc.UseSeconds || p.UseSeconds
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		pc.Format, _ = flags.GetString("format")
	}
	if flags.Changed("seconds") {
		pc.UseSeconds, _ = flags.GetBool("seconds")
	}
	if flags.Changed("min") {
		rules.Min, _ = flags.GetString("min")
	}
	if flags.Changed("max") {
		rules.Max, _ = flags.GetString("max")
	}
	if flags.Changed("minute-step") {
		step, _ := flags.GetInt("minute-step")
		rules.Minutes = core.AllowStep(step)
	}
	for _, b := range []string{rules.Min, rules.Max} {
		if _, ok := core.ParseBound(b); b != "" && !ok {
			return core.TimePickerOptions{}, fmt.Errorf("bad time bound %q, want H:M or H:M:S", b)
		}
	}

	return core.TimePickerOptions{
		Rules:       rules,
		Format:      core.ParseFormat(pc.Format),
		UseSeconds:  pc.UseSeconds,
		Scrollable:  pc.Scrollable,
		AmPmInTitle: pc.AmPmInTitle,
		Rotate:      pc.Rotate,
		Size:        pc.Size,
	}, nil
}
