package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/prefs"
	"github.com/jask/clockface/screens"
)

var colorCmd = &cobra.Command{
	Use:     "color [initial]",
	Aliases: []string{"colour"},
	Short:   "Pick an RGBA colour",
	Long:    `Edit red, green, blue and alpha fields. The initial value accepts #rrggbb, #rgb, r,g,b[,a] or rgba(r, g, b, a).`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initial := core.RGBA{R: 255, G: 255, B: 255, A: 1}
		if len(args) == 1 {
			c, err := core.ParseRGBA(args[0])
			if err != nil {
				return err
			}
			initial = c
		}
		palette, err := prefs.LoadPalette(cfg.Prefs.Dir)
		if err != nil {
			logger.Warn("palette unavailable", "dir", cfg.Prefs.Dir, "err", err)
		}
		dir := cfg.Prefs.Dir
		save := func(list []string) error {
			return prefs.SavePalette(dir, prefs.Palette{Swatches: list})
		}
		keys := newKeys()
		screen := screens.NewColorScreen(initial, palette.Swatches, save, keys, logger)
		return runPicker(cmd, screen, keys, screens.KindColor)
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
}
