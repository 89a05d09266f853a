package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/database"
	"github.com/jask/clockface/internal/database/repository"
	"github.com/jask/clockface/internal/presets"
	"github.com/jask/clockface/screens"
)

var errNoValue = errors.New("no value selected")

func newKeys() *core.KeyRegistry {
	return core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
}

// runPicker runs root full screen and prints the confirmed value.
func runPicker(cmd *cobra.Command, root core.Screen, keys *core.KeyRegistry, kind string) error {
	m := core.NewModel("clockface", root, keys, core.NewCommandRegistry(core.DefaultCommands()), logger)
	keepOpen, _ := cmd.Flags().GetBool("keep-open")
	m.ExitOnConfirm = !keepOpen
	m.OpenCommandModal = screens.OpenCommandPalette

	if kind != screens.KindColor {
		list, err := presets.Load(cfg.Presets.Path)
		if err != nil {
			logger.Warn("presets unavailable", "path", cfg.Presets.Path, "err", err)
		} else if len(list) > 0 {
			m.OpenPresets = func(*core.Model) core.Screen { return screens.NewPresetScreen(list) }
		}
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		db, err := database.OpenAndMigrate(cfg.Database.Path)
		if err != nil {
			logger.Warn("history unavailable", "path", cfg.Database.Path, "err", err)
		} else {
			defer db.Close()
			repo := repository.NewHistoryRepo(db)
			m.OpenHistory = func(*core.Model) core.Screen { return screens.NewHistoryScreen(kind, repo) }
			m.OnConfirm = recordCmd(repo)
		}
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	fm, ok := final.(core.Model)
	if !ok {
		return errNoValue
	}
	res, ok := fm.Result()
	if !ok {
		return errNoValue
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Value)
	return nil
}

func recordCmd(repo *repository.HistoryRepo) func(core.ConfirmedMsg) tea.Cmd {
	return func(msg core.ConfirmedMsg) tea.Cmd {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if _, err := repo.Record(ctx, msg.Kind, msg.Value); err != nil {
				return core.StatusMsg{Text: "history: " + err.Error(), IsErr: true}
			}
			return nil
		}
	}
}
