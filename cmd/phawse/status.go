package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/naveenspark/phawse/internal/cooldown"
)

func newStatusCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether posting is allowed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			rem, err := s.board.Remaining(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			st := cooldown.StateFor(rem)
			printButtonState(cmd.OutOrStdout(), st)
			if st.Disabled {
				fmt.Fprintf(cmd.OutOrStdout(), "%s remaining\n", rem.Round(100*time.Millisecond))
			}
			return nil
		},
	}
}

func newWaitCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "wait",
		Short: "Block until the cooldown ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			var last string
			return cooldown.Watch(cmd.Context(), s.board.Cooldown(), cooldown.TickInterval, time.Now, func(st cooldown.ButtonState) {
				if st.Label == last {
					return
				}
				last = st.Label
				printButtonState(cmd.OutOrStdout(), st)
			})
		},
	}
}
