// File: cmd/kickstart/serve.go
// Brief: CLI command wiring and implementation for 'serve'.

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/kickstart/internal/featureflags"
	"github.com/example/kickstart/internal/logging"
	"github.com/example/kickstart/internal/wizardui"
)

func newServeCommand(logLevel *string) *cobra.Command {
	listenAddr := ":8080"
	historyDB := ""
	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Run the scaffolding wizard web server",
		Long:          "Serve the wizard UI, the JSON preview API, and the archive download endpoint. Wizard state lives entirely in the URL, so any page can be bookmarked or shared.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			srv, err := wizardui.New(wizardui.Config{
				ListenAddr: listenAddr,
				HistoryDB:  historyDB,
				Flags:      featureflags.FromContext(cmd.Context()),
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Starting wizard on %s\n", listenAddr)

			group, ctx := errgroup.WithContext(cmd.Context())
			group.Go(func() error {
				return srv.Run(ctx)
			})
			return group.Wait()
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", listenAddr, "TCP address to serve the wizard on")
	cmd.Flags().StringVar(&historyDB, "history-db", historyDB, "Path of the SQLite download-history database (empty disables history)")
	return cmd
}
