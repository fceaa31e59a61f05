package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/internal/gregor/server"
	"github.com/msto63/eiya/pkg/core/version"
	"github.com/spf13/cobra"
)

func (a *app) serveCommand() *cobra.Command {
	var host string
	var port, metricsPort int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Gregor gRPC server",
		Long: `Serve the date operations as the gRPC service eiya.v1.Gregor, with
the standard health service and Prometheus metrics on /metrics.

Listener defaults come from the [server] section of the configuration.

Examples:
  eiya serve
  eiya serve --port 9170 --metrics-port 9171`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.service == nil {
				return eiyaerror.New("serve runs the local engine; drop --remote").
					WithCode(eiyaerror.CodeInvalidInput)
			}

			cfg := a.config.Server
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("metrics-port") {
				cfg.MetricsPort = metricsPort
			}

			srv, err := server.New(cfg, a.service, a.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Gregor %s listening on %s (metrics %s)\n",
				version.Gregor, cfg.Address(), cfg.MetricsAddress())

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				if err != nil {
					printError(cmd.ErrOrStderr(), "server failed", err)
				}
				return err
			case sig := <-sigCh:
				a.logger.Info("Shutdown signal received", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout.Duration)
			defer cancel()
			srv.Stop(ctx)
			return nil
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (default: server.host)")
	cmd.Flags().IntVar(&port, "port", 0, "gRPC port (default: server.port)")
	cmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "metrics port, 0 disables (default: server.metrics_port)")
	return cmd
}
