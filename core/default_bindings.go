package core

import (
	"fmt"
	"slices"
	"strings"
)

const (
	ScopeTime     = "screen:time"
	ScopeDateTime = "screen:datetime"
	ScopeColor    = "screen:color"
	ScopeEntry    = "screen:entry"
	ScopeHistory  = "screen:history"
	ScopePresets  = "screen:presets"
	ScopeCommand  = "screen:command"
)

var (
	pickerScopes  = []string{ScopeTime, ScopeDateTime}
	rootScopes    = []string{ScopeTime, ScopeDateTime, ScopeColor}
	overlayScopes = []string{ScopeEntry, ScopeHistory, ScopePresets, ScopeCommand}
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: pickerScopes},
		{Keys: []string{"up", "down"}, Action: "step", Fixed: true, Description: "step", Scopes: pickerScopes},
		{Keys: []string{"enter"}, Action: "commit", Fixed: true, Description: "select", Scopes: pickerScopes},
		{Keys: []string{"tab"}, Action: "next-unit", Fixed: true, Description: "next unit", Scopes: pickerScopes},
		{Keys: []string{"a", "p"}, Action: "period", Fixed: true, Description: "am/pm", Scopes: []string{ScopeTime}},
		{Keys: []string{"[", "]"}, Action: "switch-tab", Fixed: true, Description: "date/time", Scopes: []string{ScopeDateTime}},
		{Keys: []string{"/"}, Action: "open-entry", Description: "type", Scopes: pickerScopes},
		{Keys: []string{"tab"}, Action: "next-channel", Description: "next field", Scopes: []string{ScopeColor}},
		{Keys: []string{"ctrl+s"}, Action: "save-swatch", Description: "save swatch", Scopes: []string{ScopeColor}},
		{Keys: []string{"ctrl+o"}, Action: "next-swatch", Description: "swatches", Scopes: []string{ScopeColor}},
		{Keys: []string{"enter"}, Action: "commit", Description: "select", Scopes: []string{ScopeColor}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: rootScopes},
		{Keys: []string{"ctrl+r"}, Action: "open-history", Description: "history", Scopes: rootScopes},
		{Keys: []string{"ctrl+p"}, Action: "open-presets", Description: "presets", Scopes: pickerScopes},
		{Keys: []string{"esc"}, Action: "close", Fixed: true, Description: "close", Scopes: overlayScopes},
		{Keys: []string{"enter"}, Action: "select", Fixed: true, Description: "choose", Scopes: overlayScopes},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action is
// remapped in actionKeys, for example from the keys table of the config file.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
			Fixed:       b.Fixed,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 && !b.Fixed {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

// CheckActionKeybindings rejects remaps for unknown actions and for actions
// whose every binding is fixed.
func CheckActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) error {
	for action := range actionKeys {
		known, remappable := false, false
		for _, b := range bindings {
			if b.Action != action {
				continue
			}
			known = true
			remappable = remappable || !b.Fixed
		}
		switch {
		case !known:
			return fmt.Errorf("keys: unknown action %q, want one of %s", action, strings.Join(RemappableActions(bindings), ", "))
		case !remappable:
			return fmt.Errorf("keys: %q is a fixed picker key and cannot be remapped", action)
		}
	}
	return nil
}

// RemappableActions lists the actions the keys table may change.
func RemappableActions(bindings []KeyBinding) []string {
	var out []string
	for _, b := range bindings {
		if !b.Fixed && !slices.Contains(out, b.Action) {
			out = append(out, b.Action)
		}
	}
	slices.Sort(out)
	return out
}
