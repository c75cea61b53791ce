package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/akyairhashvil/focusclock/internal/models"
	"github.com/akyairhashvil/focusclock/internal/presets"
	"github.com/akyairhashvil/focusclock/internal/tui"
	"github.com/spf13/cobra"
)

func newPresetsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved presets",
	}
	cmd.AddCommand(newPresetsListCmd(opts))
	cmd.AddCommand(newPresetsAddCmd(opts))
	cmd.AddCommand(newPresetsRemoveCmd(opts))
	cmd.AddCommand(newPresetsMoveCmd(opts))
	cmd.AddCommand(newPresetsClearCmd(opts))
	return cmd
}

func newPresetsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				printPresets(cmd, a.presets.List())
				return nil
			})
		},
	}
}

func printPresets(cmd *cobra.Command, list []models.SavedPreset) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No saved presets.")
		return
	}
	for i, p := range list {
		kind := "work"
		if p.IsBreak {
			kind = "break"
		}
		fmt.Fprintf(out, "%2d  %-24s %8s  %s\n", i+1, p.Title, tui.FormatClock(p.DurationSeconds), kind)
	}
}

func newPresetsAddCmd(opts *rootOptions) *cobra.Command {
	var isBreak bool
	cmd := &cobra.Command{
		Use:   "add <mm:ss|minutes> [title]",
		Short: "Save a preset",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := tui.ParseClock(args[0])
			if err != nil {
				return err
			}
			title := models.PresetTitle(seconds)
			if len(args) == 2 {
				title = args[1]
			}
			return withApp(cmd.Context(), opts, func(a *app) error {
				p, err := a.presets.Add(cmd.Context(), title, seconds, isBreak)
				if errors.Is(err, presets.ErrDuplicatePreset) {
					return fmt.Errorf("a %s preset of %s is already saved", kindOf(isBreak), tui.FormatClock(seconds))
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s).\n", p.Title, tui.FormatClock(p.DurationSeconds))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&isBreak, "break", false, "save as a break preset")
	return cmd
}

func kindOf(isBreak bool) string {
	if isBreak {
		return "break"
	}
	return "work"
}

// lookupPreset resolves a 1-based position, falling back to an id.
func lookupPreset(store *presets.Store, arg string) (models.SavedPreset, error) {
	if p, _, ok := store.Find(arg); ok {
		return p, nil
	}
	idx, err := parsePosition(arg)
	if err != nil {
		return models.SavedPreset{}, fmt.Errorf("no preset with id or position %q", arg)
	}
	list := store.List()
	if idx < 0 || idx >= len(list) {
		return models.SavedPreset{}, fmt.Errorf("position %d: %w", idx+1, presets.ErrIndexOutOfRange)
	}
	return list[idx], nil
}

// parsePosition turns a 1-based list position into an index.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", arg)
	}
	return n - 1, nil
}

func newPresetsRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position|id>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				p, err := lookupPreset(a.presets, args[0])
				if err != nil {
					return err
				}
				if err := a.presets.Remove(cmd.Context(), p.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", p.Title)
				return nil
			})
		},
	}
}

func newPresetsMoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a saved preset to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app) error {
				if err := a.presets.Reorder(cmd.Context(), from, to); err != nil {
					return err
				}
				printPresets(cmd, a.presets.List())
				return nil
			})
		},
	}
}

func newPresetsClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				n := a.presets.Len()
				if err := a.presets.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d presets.\n", n)
				return nil
			})
		},
	}
}
