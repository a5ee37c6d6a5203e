package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"cookbook-manager/config"
	"cookbook-manager/cookbook"
	"cookbook-manager/logger"
)

func main() {
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "cookbooks", term.IsTerminal(int(os.Stderr.Fd())))
	defer log.Sync()

	if err := newRootCommand(cfg, os.Stdout, log).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config, out io.Writer, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cookbooks",
		Short:         "Catalog cookbooks, track lending and plan photoshoots",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cookbook.RunDemo(cfg.Database.Path, cfg.Demo, out, log, time.Now)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.AddCommand(newBorrowCommand(cfg, out, log))
	cmd.AddCommand(newPhotoshootCommand(cfg, out, log))
	cmd.AddCommand(newBorrowsCommand(cfg, out, log))
	cmd.AddCommand(newShowCommand(cfg, out, log))
	return cmd
}

// withManager opens the catalog, makes sure the tables exist and runs fn.
func withManager(cfg *config.Config, out io.Writer, log *zap.Logger, fn func(*cookbook.Manager) error) error {
	mgr, err := cookbook.NewManager(cfg.Database.Path, out, log)
	if err != nil {
		return err
	}
	defer mgr.Close()

	if err := mgr.EnsureSchema(); err != nil {
		return err
	}
	return fn(mgr)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cookbook ID: %s", s)
	}
	return id, nil
}

func newBorrowCommand(cfg *config.Config, out io.Writer, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <cookbook-id> <friend> [date]",
		Short: "Record that a friend borrowed a cookbook (date defaults to today)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			date := time.Now().Format(cookbook.DateLayout)
			if len(args) == 3 {
				date = args[2]
			}
			return withManager(cfg, out, log, func(mgr *cookbook.Manager) error {
				return mgr.TrackBorrow(id, args[1], date)
			})
		},
	}
}

func newPhotoshootCommand(cfg *config.Config, out io.Writer, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "photoshoot <cookbook-id>",
		Short: "Print photo angle, prop and hashtag suggestions for a cookbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withManager(cfg, out, log, func(mgr *cookbook.Manager) error {
				return mgr.PlanPhotoshoot(id)
			})
		},
	}
}

func newBorrowsCommand(cfg *config.Config, out io.Writer, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "borrows <cookbook-id>",
		Short: "List the lending history of a cookbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withManager(cfg, out, log, func(mgr *cookbook.Manager) error {
				return mgr.ListBorrows(id)
			})
		},
	}
}

func newShowCommand(cfg *config.Config, out io.Writer, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "show <cookbook-id>",
		Short: "Show the stored attributes of a cookbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withManager(cfg, out, log, func(mgr *cookbook.Manager) error {
				return mgr.ShowCookbook(id)
			})
		},
	}
}
