package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"pp-viewer/api"
	"pp-viewer/app"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the application",
	Long:  "Serve the application on every route path, rendering views from the API",
	RunE:  runServe,
}

type serveArgs struct {
	addr string
}

var sArgs serveArgs

func init() {
	serveCmd.Flags().StringVarP(&sArgs.addr, "addr", "a", "", "listen address, overrides PP_HTTP_ADDR")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if sArgs.addr != "" {
		cfg.HTTPAddr = sArgs.addr
	}
	client, err := api.New(cfg.API(), api.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create api client: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Config{Addr: cfg.HTTPAddr, CSRFCookieName: cfg.CSRFCookieName}, client, logger)
	if err := a.Run(ctx); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
