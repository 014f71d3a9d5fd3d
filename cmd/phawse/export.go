package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/internal/browser"
	"github.com/naveenspark/phawse/pkg/domain"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var (
		out      string
		sortFlag string
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			view, err := s.board.Render(cmd.Context(), domain.ParseSortOrder(sortFlag), time.Now())
			if err != nil {
				return err
			}

			if out == "" && !open {
				return board.WriteHTML(cmd.OutOrStdout(), view)
			}
			if out == "" {
				out = filepath.Join(os.TempDir(), "phawse-comments.html")
			}
			if err := writeHTMLFile(out, view); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

			if open {
				if err := browser.OpenFile(out); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "could not open browser: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "newest", "sort order: newest or oldest")
	cmd.Flags().BoolVar(&open, "open", false, "open the page in the default browser")
	return cmd
}

func writeHTMLFile(path string, view board.RenderResult) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return board.WriteHTML(f, view)
}
