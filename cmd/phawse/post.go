package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/pkg/domain"
)

func newPostCmd(g *globalFlags) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "post TEXT...",
		Short: "Post a comment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			now := time.Now()
			text := strings.Join(args, " ")
			res, err := s.board.Submit(cmd.Context(), author, text, domain.SortNewest, now)
			if errors.Is(err, board.ErrCooldownActive) {
				rem, remErr := s.board.Remaining(cmd.Context(), now)
				if remErr != nil {
					return err
				}
				return fmt.Errorf("%w: wait %ds", err, cooldown.WaitSeconds(rem))
			}
			if err != nil {
				return err
			}
			printPosted(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "display name (default Anonymous)")
	return cmd
}
