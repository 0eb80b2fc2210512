package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"hkelection-backend/lib/configuration"
	"hkelection-backend/lib/restyutil"
	"hkelection-backend/lib/serviceutil"
	"hkelection-backend/lib/telemetry"
	"hkelection-backend/lib/toolserver"
	"hkelection-backend/services/electors"

	"github.com/spf13/cobra"
)

type Config struct {
	Port        int                   `json:"port"`
	Electors    electors.SourceConfig `json:"electors"`
	RestyOutput string                `json:"resty_output"`
}

var (
	transport string
	port      int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "electiond",
	Short: "Tool server for Hong Kong election data",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&transport, "transport", "stdio", `Transport to serve tools over ("stdio" or "http").`)
	rootCmd.Flags().IntVar(&port, "port", 8000, "Port for the http transport.")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging/instrumentation.")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := serviceutil.SignalContext()

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := configuration.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read config: %w", err)
	}
	if cfg.Port == 0 {
		cfg.Port = port
	}

	tel, err := telemetry.SetupFromEnv(ctx, "electiond")
	switch {
	case os.IsNotExist(err):
		slog.Warn("no telemetry.json5 found, telemetry disabled")
	case err != nil:
		return fmt.Errorf("setup telemetry: %w", err)
	default:
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	source := electors.NewCSVSource(cfg.Electors)
	if cfg.RestyOutput != "" {
		source.SetInstrumentOutput(restyutil.NewFilesystemOutput(cfg.RestyOutput))
	}

	srv := toolserver.New("HK OpenAI election Server", "1.0.0")
	electors.NewService(source).Register(srv)

	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "http":
		mux := http.NewServeMux()
		mux.Handle("/mcp", srv.StreamableHandler())
		go serviceutil.StartHttpServer(cfg.Port, mux)
		<-ctx.Done()
		return nil
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
