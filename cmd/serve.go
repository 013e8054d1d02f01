package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/httpserver"
)

var (
	serveAddr   string
	serveNoSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recogniser over HTTP",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	serveCmd.Flags().BoolVar(&serveNoSeed, "no-seed", false, "skip the built-in templates")
}

func serve(cmd *cobra.Command, args []string) error {
	addr := listenAddr(cmd)
	rec, _, err := loadRecogniser(settings.GesturesPath(), settings.Recogniser.SeedTemplates && !serveNoSeed)
	if err != nil {
		return err
	}
	logger.Infof("Serving %d template(s)", rec.Len())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return httpserver.New(rec, logger, settings.Server.Timeout()).ListenAndServe(ctx, addr)
}

func listenAddr(cmd *cobra.Command) string {
	if cmd.Flags().Changed("addr") {
		return serveAddr
	}
	return settings.Server.Addr
}
