package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/pkg/domain"
)

func newListCmd(g *globalFlags) *cobra.Command {
	var sortFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the comment list",
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
			if jsonOut {
				return printListJSON(cmd.OutOrStdout(), view)
			}
			printList(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "newest", "sort order: newest or oldest")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

type jsonNode struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	Time      string `json:"time"`
}

func printListJSON(w io.Writer, view board.RenderResult) error {
	out := make([]jsonNode, 0, len(view.Nodes))
	for _, n := range view.Nodes {
		out = append(out, jsonNode{
			ID:        n.ID,
			Author:    n.RawAuthor,
			Text:      n.RawText,
			Timestamp: n.Timestamp,
			Time:      n.Time,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
