package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/oracle"
	"github.com/imdyangs/past-present-future/internal/oraclestub"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the reading service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := oracle.NewClient(cfg.APIBase(), nil)
		if err != nil {
			return err
		}
		status, err := client.CheckHealth(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading service at %s is unreachable: %v", client.BaseURL(), err)
		}
		fmt.Printf("%s: %s\n", client.BaseURL(), status)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local reading service for offline development",
	Long: `Serve runs a stand-in for the reading service that composes readings
from the card meanings it receives. Point ppf at it with --local.

The --fail, --empty and --delay flags reproduce service failures, empty
replies and slow responses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		failStatus, _ := cmd.Flags().GetInt("fail")
		empty, _ := cmd.Flags().GetBool("empty")
		delay, _ := cmd.Flags().GetDuration("delay")

		srv := oraclestub.NewServer(addr, oraclestub.Options{
			FailStatus: failStatus,
			Empty:      empty,
			Delay:      delay,
		}, logger.Named("stub"))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("reading stub listening", zap.String("addr", addr))
			fmt.Printf("Reading stub listening on %s\n", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("reading stub failed: %v", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down reading stub")
		if err := oraclestub.Shutdown(srv); err != nil {
			return fmt.Errorf("error shutting down: %v", err)
		}
		return <-errCh
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8787", "listen address")
	serveCmd.Flags().Int("fail", 0, "answer every reading with this HTTP status")
	serveCmd.Flags().Bool("empty", false, "answer with an empty reading")
	serveCmd.Flags().Duration("delay", 0, "wait before answering")
}
