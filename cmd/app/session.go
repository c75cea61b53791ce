package main

import (
	"fmt"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/tui"
	"github.com/spf13/cobra"
)

func newSessionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or discard the persisted session",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the session the timer will resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				out := cmd.OutOrStdout()
				snap, ok := a.snapshots.Load(cmd.Context())
				if !ok {
					fmt.Fprintln(out, "No saved session.")
					return nil
				}
				state := "paused"
				if snap.IsRunning {
					state = "running"
				}
				fmt.Fprintf(out, "%s %s, %s of %s left\n", kindOf(snap.IsBreak), state,
					tui.FormatClock(snap.RemainingSeconds), tui.FormatClock(snap.TotalSeconds))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the saved session so the next launch starts fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				if err := a.db.DeleteSetting(cmd.Context(), config.KeyTimerState); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
				return nil
			})
		},
	})
	return cmd
}
