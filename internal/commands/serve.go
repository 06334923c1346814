// internal/commands/serve.go
package distilreport

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/distilreport/internal/webserver"
	"github.com/mwiater/distilreport/web"
)

// serveCmd starts the report server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live report, charts and assets over HTTP",
	Long:  `Serve the comparison report at /, one PNG chart per group under /plots/, static assets under /static/ and a health check at /healthz. The CSV is re-read on every request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		srv, err := webserver.New(webserver.Config{
			Host:        cfg.Host,
			Port:        cfg.Port,
			CSVPath:     cfg.CSVPath,
			MethodOrder: cfg.TrainingMethods,
			Title:       cfg.Title,
			NotesPath:   cfg.NotesPath,
			StaticDir:   cfg.StaticDir,
			Assets:      web.Assets,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("%s http://%s\n", successText("Serving report on"), srv.Addr())
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "interface to bind (default 127.0.0.1)")
	serveCmd.Flags().Int("port", 0, "port to listen on (default 5001)")
	_ = viper.BindPFlag("host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}
