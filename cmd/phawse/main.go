package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/internal/config"
	"github.com/naveenspark/phawse/internal/logging"
	"github.com/naveenspark/phawse/internal/store"
	"github.com/naveenspark/phawse/internal/tui"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	origin     string
	storePath  string
	ephemeral  bool
}

// session is an opened board plus everything that must be released with it.
type session struct {
	cfg   config.Config
	board *board.Board
	close func()
}

func (g *globalFlags) open(ctx context.Context) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.origin != "" {
		cfg.Origin = g.origin
	}
	if g.storePath != "" {
		cfg.StorePath = g.storePath
	}

	closeLog, err := logging.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var kv store.KV
	closeStore := func() error { return nil }
	if g.ephemeral {
		kv = store.NewMemory(cfg.Origin)
	} else {
		s, err := store.OpenSQLite(ctx, cfg.StorePath, cfg.Origin)
		if err != nil {
			_ = closeLog()
			return nil, err
		}
		kv = s
		closeStore = s.Close
	}

	b := board.New(kv, board.Options{
		Cooldown:   cfg.Cooldown.Duration,
		DateLayout: cfg.DateLayout,
	})
	return &session{
		cfg:   cfg,
		board: b,
		close: func() {
			_ = closeStore()
			_ = closeLog()
		},
	}, nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "phawse",
		Short:         "A local comment board",
		Long:          "phawse keeps a comment board in a local, origin-scoped store.\nRun without a subcommand to open the interactive board.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			p := tea.NewProgram(tui.NewApp(s.board, version), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui error: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default ~/.config/phawse/config.toml)")
	root.PersistentFlags().StringVar(&g.origin, "origin", "", "origin the store is scoped to")
	root.PersistentFlags().StringVar(&g.storePath, "store", "", "path to the profile store")
	root.PersistentFlags().BoolVar(&g.ephemeral, "ephemeral", false, "keep comments in memory only")

	root.AddCommand(newListCmd(g))
	root.AddCommand(newPostCmd(g))
	root.AddCommand(newStatusCmd(g))
	root.AddCommand(newWaitCmd(g))
	root.AddCommand(newExportCmd(g))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the phawse version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "phawse "+version)
		},
	}
}
