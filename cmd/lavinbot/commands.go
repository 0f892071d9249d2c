package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	httpadapter "github.com/couchcryptid/lavinbot/internal/adapter/http"
	"github.com/couchcryptid/lavinbot/internal/config"
	"github.com/couchcryptid/lavinbot/internal/domain"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lavinbot",
		Short:         "Swedish avalanche forecast chat bot",
		Long:          "Fetches avalanche forecasts from lavinprognoser.se and condenses them into short plain-text reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newReportCmd(), newAreasCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the chat HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <area> [date]",
		Short: "Print the report for an area, optionally for a given date",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a, err := build(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.pipeline.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAreasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the forecast areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, area := range domain.Areas() {
				fmt.Fprintf(w, "%s\t%s\n", area.Name, area.Slug)
			}
			return w.Flush()
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a, err := build(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	srv := httpadapter.NewServer(cfg.HTTPAddr, a.pipeline, a.pipeline, a.logger)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}
	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", "error", err)
	}
	a.logger.Info("shutdown complete")
	return nil
}
